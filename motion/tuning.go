package motion

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTuning is wrapped by every TuningError.
var ErrInvalidTuning = errors.New("motion: invalid tuning")

// QuickTurnPolicy selects how a reversal of horizontal input is boosted.
type QuickTurnPolicy string

const (
	// QuickTurnThreshold boosts acceleration while the body still moves at
	// half top speed or more against the input.
	QuickTurnThreshold QuickTurnPolicy = "threshold"
	// QuickTurnWindow boosts acceleration for QuickTurnWindow seconds after
	// the input reverses against the current velocity, on the ground only.
	QuickTurnWindow QuickTurnPolicy = "window"
)

// GroundCategory is the collision category level geometry is placed in.
const GroundCategory uint = 1 << 0

// Tuning holds the designer-facing parameters. Times are seconds, distances
// world units, speeds units per second.
type Tuning struct {
	TopSpeed            float64         `yaml:"top_speed" toml:"top_speed"`
	AccelTime           float64         `yaml:"accel_time" toml:"accel_time"`
	DecelTime           float64         `yaml:"decel_time" toml:"decel_time"`
	AirDecelTime        float64         `yaml:"air_decel_time" toml:"air_decel_time"`
	QuickTurnMultiplier float64         `yaml:"quick_turn_multiplier" toml:"quick_turn_multiplier"`
	QuickTurnWindow     float64         `yaml:"quick_turn_window" toml:"quick_turn_window"`
	QuickTurnPolicy     QuickTurnPolicy `yaml:"quick_turn_policy" toml:"quick_turn_policy"`

	TerminalSpeed             float64 `yaml:"terminal_speed" toml:"terminal_speed"`
	CoyoteTime                float64 `yaml:"coyote_time" toml:"coyote_time"`
	ApexHeight                float64 `yaml:"apex_height" toml:"apex_height"`
	ApexTime                  float64 `yaml:"apex_time" toml:"apex_time"`
	VariableJumpHeight        float64 `yaml:"variable_jump_height" toml:"variable_jump_height"`
	VariableJumpWindow        float64 `yaml:"variable_jump_window" toml:"variable_jump_window"`
	GroundPoundFreezeDuration float64 `yaml:"ground_pound_freeze_duration" toml:"ground_pound_freeze_duration"`

	ProbeWidth  float64 `yaml:"probe_width" toml:"probe_width"`
	ProbeHeight float64 `yaml:"probe_height" toml:"probe_height"`
	ProbeOffset float64 `yaml:"probe_offset" toml:"probe_offset"`
	GroundMask  uint    `yaml:"ground_mask" toml:"ground_mask"`
}

// DefaultTuning returns the stock character feel.
func DefaultTuning() Tuning {
	return Tuning{
		TopSpeed:            6,
		AccelTime:           0.5,
		DecelTime:           0.1,
		AirDecelTime:        0.3,
		QuickTurnMultiplier: 2.5,
		QuickTurnWindow:     0.15,
		QuickTurnPolicy:     QuickTurnThreshold,

		TerminalSpeed:             10,
		CoyoteTime:                0.1,
		ApexHeight:                4,
		ApexTime:                  0.65,
		VariableJumpHeight:        2,
		VariableJumpWindow:        0.1,
		GroundPoundFreezeDuration: 0.1,

		ProbeWidth:  0.9,
		ProbeHeight: 0.1,
		ProbeOffset: 0.5,
		GroundMask:  GroundCategory,
	}
}

// TuningError reports a single rejected parameter.
type TuningError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *TuningError) Error() string {
	return fmt.Sprintf("motion: invalid tuning: %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *TuningError) Unwrap() error { return ErrInvalidTuning }

// Validate rejects parameter sets that would produce non-finite derived
// constants or meaningless windows.
func (t Tuning) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"top_speed", t.TopSpeed},
		{"accel_time", t.AccelTime},
		{"decel_time", t.DecelTime},
		{"air_decel_time", t.AirDecelTime},
		{"quick_turn_multiplier", t.QuickTurnMultiplier},
		{"terminal_speed", t.TerminalSpeed},
		{"apex_height", t.ApexHeight},
		{"apex_time", t.ApexTime},
		{"probe_width", t.ProbeWidth},
		{"probe_height", t.ProbeHeight},
	}
	for _, p := range positive {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return &TuningError{Field: p.field, Value: p.value, Reason: "must be finite"}
		}
		if p.value <= 0 {
			return &TuningError{Field: p.field, Value: p.value, Reason: "must be greater than zero"}
		}
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"quick_turn_window", t.QuickTurnWindow},
		{"coyote_time", t.CoyoteTime},
		{"variable_jump_window", t.VariableJumpWindow},
		{"ground_pound_freeze_duration", t.GroundPoundFreezeDuration},
		{"probe_offset", t.ProbeOffset},
	}
	for _, p := range nonNegative {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return &TuningError{Field: p.field, Value: p.value, Reason: "must be finite"}
		}
		if p.value < 0 {
			return &TuningError{Field: p.field, Value: p.value, Reason: "must not be negative"}
		}
	}

	if math.IsNaN(t.VariableJumpHeight) || t.VariableJumpHeight < 0 || t.VariableJumpHeight > t.ApexHeight {
		return &TuningError{Field: "variable_jump_height", Value: t.VariableJumpHeight, Reason: "must be within [0, apex_height]"}
	}

	switch t.QuickTurnPolicy {
	case QuickTurnThreshold, QuickTurnWindow:
	default:
		return &TuningError{Field: "quick_turn_policy", Reason: fmt.Sprintf("unknown policy %q", t.QuickTurnPolicy)}
	}

	if t.GroundMask == 0 {
		return &TuningError{Field: "ground_mask", Reason: "must select at least one category"}
	}
	return nil
}

// Derived holds the constants computed from a Tuning.
type Derived struct {
	AccelRate     float64
	DecelRate     float64
	AirDecelRate  float64
	QuickTurnRate float64

	// Gravity is negative (downward).
	Gravity          float64
	FullJumpVelocity float64
	// ShortHopVelocity is the launch speed whose arc, under the same gravity,
	// peaks at VariableJumpHeight instead of ApexHeight.
	ShortHopVelocity float64
}

// Derive validates t and computes its derived constants.
func (t Tuning) Derive() (Derived, error) {
	if err := t.Validate(); err != nil {
		return Derived{}, err
	}

	accel := t.TopSpeed / t.AccelTime
	full := 2 * t.ApexHeight / t.ApexTime
	return Derived{
		AccelRate:        accel,
		DecelRate:        t.TopSpeed / t.DecelTime,
		AirDecelRate:     t.TopSpeed / t.AirDecelTime,
		QuickTurnRate:    accel * t.QuickTurnMultiplier,
		Gravity:          -2 * t.ApexHeight / (t.ApexTime * t.ApexTime),
		FullJumpVelocity: full,
		ShortHopVelocity: math.Sqrt(full * full * t.VariableJumpHeight / t.ApexHeight),
	}, nil
}
