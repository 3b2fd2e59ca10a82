package gamemath

import "math"

// Vec is a 2D point or vector.
type Vec struct {
	X, Y float64
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Lerp interpolates so that t=0 and t=1 return a and b exactly.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Approach moves current toward target by at most step.
func Approach(current, target, step float64) float64 {
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}

// Damp applies a per-tick multiplier scaled to an arbitrary step of dt
// seconds, where a tick is 1/60s.
func Damp(v, perTick, dt float64) float64 {
	return v * math.Pow(perTick, dt*60)
}
