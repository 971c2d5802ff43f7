package motion

import (
	"math"

	"github.com/jakecoffman/cp"
)

func (c *Controller) stepVertical(s *State, v, dt float64) {
	d := c.derived
	terminal := c.tuning.TerminalSpeed

	if s.grounded {
		s.velocity.Y = 0
	} else {
		s.velocity.Y = math.Max(-terminal, s.velocity.Y+d.Gravity*dt)
	}

	launched := false
	if v > 0 && s.prevVertical <= 0 && (s.grounded || s.coyote.Open()) {
		s.velocity.Y = d.FullJumpVelocity
		s.grounded = false
		s.coyote.Consume()
		s.variableJump.Reset()
		launched = true
	}

	// The launch step itself is not counted, so Elapsed always equals the
	// time gravity has been integrated since launch.
	if !launched && s.variableJump.Open() {
		s.variableJump.Tick(dt)
		if v <= 0 && s.variableJump.Within() {
			s.velocity.Y = d.ShortHopVelocity + d.Gravity*s.variableJump.Elapsed()
			s.variableJump.Consume()
		}
	}
	s.velocity.Y = math.Max(-terminal, s.velocity.Y)

	if !s.grounded && v < 0 && !s.groundPounding {
		s.groundPounding = true
		s.groundPound.Reset()
		s.variableJump.Consume()
	}
	if s.groundPounding {
		if s.groundPound.Open() {
			s.velocity = cp.Vector{}
		} else {
			s.velocity.Y = -terminal
		}
		s.groundPound.Tick(dt)
	}
}
