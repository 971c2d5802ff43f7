package motion

import "math"

// Input is one sample of player intent for a single step.
type Input struct {
	// Horizontal is -1 (left) to 1 (right).
	Horizontal float64
	// Vertical is positive for jump intent and negative for ground pound
	// intent.
	Vertical float64
	// DeathToggle is the current level of the death control. The controller
	// reacts to its rising edge only.
	DeathToggle bool
}

// Clamped returns in with both axes limited to [-1, 1]. NaN reads as zero.
func (in Input) Clamped() Input {
	in.Horizontal = clampAxis(in.Horizontal)
	in.Vertical = clampAxis(in.Vertical)
	return in
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
