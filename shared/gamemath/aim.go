package gamemath

import (
	"math"
	"time"
)

// Aim returns the velocity of speed units/s pointing from 'from' to 'to'.
// Coincident points aim straight down.
func Aim(from, to Vec, speed float64) Vec {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return Vec{X: 0, Y: speed}
	}
	return Vec{X: dx / length * speed, Y: dy / length * speed}
}

// Oscillate returns spawnY + sin(t·speed + phase)·amplitude.
func Oscillate(spawnY, t, speed, phase, amplitude float64) float64 {
	return spawnY + math.Sin(t*speed+phase)*amplitude
}

// ShotInterval returns base·(1 + u·variation) for u in [-1, 1].
func ShotInterval(base time.Duration, variation, u float64) time.Duration {
	u = Clamp(u, -1, 1)
	return time.Duration(float64(base) * (1 + u*variation))
}
