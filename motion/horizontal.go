package motion

import "math"

func (c *Controller) stepHorizontal(s *State, x, dt float64) {
	top := c.tuning.TopSpeed

	if x == 0 {
		s.turnDir = 0
		rate := c.derived.AirDecelRate
		if s.grounded {
			rate = c.derived.DecelRate
		}
		// A retune can lower the top speed below the carried velocity.
		s.velocity.X = math.Max(-top, math.Min(top, approachZero(s.velocity.X, rate*dt)))
		return
	}

	dir := sign(x)
	if dir < 0 {
		s.facing = FacingLeft
	} else {
		s.facing = FacingRight
	}

	rate := c.derived.AccelRate
	if c.quickTurning(s, dir, dt) {
		rate = c.derived.QuickTurnRate
	}
	s.velocity.X = math.Max(-top, math.Min(top, s.velocity.X+rate*dir*dt))
}

// quickTurning reports whether this step's acceleration toward dir gets the
// quick turn rate under the configured policy.
func (c *Controller) quickTurning(s *State, dir, dt float64) bool {
	vx := s.velocity.X

	if c.tuning.QuickTurnPolicy == QuickTurnWindow {
		if dir != s.turnDir {
			s.turnDir = dir
			if vx != 0 && sign(vx) != dir {
				s.quickTurn.Reset()
			} else {
				s.quickTurn.Consume()
			}
		}
		boosted := s.grounded && s.quickTurn.Open()
		s.quickTurn.Tick(dt)
		return boosted
	}

	s.turnDir = dir
	half := c.tuning.TopSpeed / 2
	return (dir < 0 && vx >= half) || (dir > 0 && vx <= -half)
}

// approachZero moves v toward zero by step without crossing it.
func approachZero(v, step float64) float64 {
	switch {
	case v > 0:
		return math.Max(0, v-step)
	case v < 0:
		return math.Min(0, v+step)
	}
	return 0
}
