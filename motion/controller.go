package motion

import "github.com/jakecoffman/cp"

// Controller turns input samples into velocity, facing and a discrete state.
// It holds only the tuning and its derived constants, so one Controller can
// step any number of States.
type Controller struct {
	tuning  Tuning
	derived Derived
}

// NewController validates t and derives its constants.
func NewController(t Tuning) (*Controller, error) {
	c := &Controller{}
	if err := c.SetTuning(t); err != nil {
		return nil, err
	}
	return c, nil
}

// SetTuning replaces the tuning and re-derives every constant. An invalid
// tuning is rejected and the previous one stays active.
func (c *Controller) SetTuning(t Tuning) error {
	d, err := t.Derive()
	if err != nil {
		return err
	}
	c.tuning = t
	c.derived = d
	return nil
}

func (c *Controller) Tuning() Tuning { return c.tuning }

func (c *Controller) Derived() Derived { return c.derived }

// NewState returns a spawned state whose windows use this controller's
// ceilings.
func (c *Controller) NewState() *State {
	s := NewState()
	c.syncWindows(s)
	return s
}

// Step advances s by one fixed step of dt seconds. grounded is this step's
// GroundSensor reading. The order is fixed: timers, horizontal, vertical,
// then the state machine classifies the result.
func (c *Controller) Step(s *State, in Input, grounded bool, dt float64) {
	in = in.Clamped()
	c.syncWindows(s)

	s.previous = s.current
	s.grounded = grounded

	if in.DeathToggle && !s.prevDeath {
		if s.dead {
			s.Reset()
			s.grounded = grounded
		} else {
			s.dead = true
		}
	}
	s.prevDeath = in.DeathToggle

	if s.dead {
		s.velocity = cp.Vector{}
		s.groundPounding = false
		s.prevVertical = in.Vertical
		s.current = Next(s.current, s.facts())
		return
	}

	c.stepTimers(s, dt)
	c.stepHorizontal(s, in.Horizontal, dt)
	c.stepVertical(s, in.Vertical, dt)
	s.prevVertical = in.Vertical

	s.current = Next(s.current, s.facts())
}

func (c *Controller) syncWindows(s *State) {
	s.coyote.SetCeiling(c.tuning.CoyoteTime)
	s.variableJump.SetCeiling(c.tuning.VariableJumpWindow)
	s.groundPound.SetCeiling(c.tuning.GroundPoundFreezeDuration)
	s.quickTurn.SetCeiling(c.tuning.QuickTurnWindow)
}

// stepTimers runs the bookkeeping that happens regardless of input. Landing
// closes the windows that only make sense in the air.
func (c *Controller) stepTimers(s *State, dt float64) {
	if s.grounded {
		s.coyote.Reset()
		s.groundPounding = false
		s.groundPound.Consume()
		s.variableJump.Consume()
		return
	}
	s.coyote.Tick(dt)
}
