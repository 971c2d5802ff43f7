package common

import "math"

const (
	// TPS is the fixed simulation rate.
	TPS = 60
	// FixedDelta is the simulation step in seconds.
	FixedDelta = 1.0 / TPS
	// PixelsPerUnit scales world units to screen pixels at zoom 1.
	PixelsPerUnit = 32.0
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// SmoothFactor is the per-step blend toward a target for exponential
// smoothing at rate per second, independent of step size.
func SmoothFactor(rate, dt float64) float64 {
	if rate <= 0 {
		return 1
	}
	return 1 - math.Exp(-rate*dt)
}
