package gamemath

import (
	"math"
	"time"
)

// ArcHeight is proportional to horizontal distance and clamped to
// [minHeight, maxHeight].
func ArcHeight(dx, factor, minHeight, maxHeight float64) float64 {
	return Clamp(math.Abs(dx)*factor, minHeight, maxHeight)
}

// ArcDuration grows with straight-line distance inside [min, max].
func ArcDuration(distance float64, perUnit, min, max time.Duration) time.Duration {
	d := min + time.Duration(distance*float64(perUnit))
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}

// ArcPoint returns the position at progress p in [0,1] along a parabola from
// start to end that rises height units above the straight line at p=0.5.
// Screen y grows downward, so rising subtracts.
func ArcPoint(start, end Vec, height, p float64) Vec {
	return Vec{
		X: Lerp(start.X, end.X, p),
		Y: Lerp(start.Y, end.Y, p) - ArcOffset(height, p),
	}
}

// ArcOffset is the parabolic lift 4h·p·(1-p).
func ArcOffset(height, p float64) float64 {
	return 4 * height * p * (1 - p)
}
