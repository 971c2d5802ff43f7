package motion

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func newTestController(t *testing.T, mutate func(*Tuning)) *Controller {
	t.Helper()
	tu := DefaultTuning()
	if mutate != nil {
		mutate(&tu)
	}
	c, err := NewController(tu)
	require.NoError(t, err)
	return c
}

func stepN(c *Controller, s *State, in Input, grounded bool, n int) {
	for i := 0; i < n; i++ {
		c.Step(s, in, grounded, dt)
	}
}

func TestSpawnState(t *testing.T) {
	c := newTestController(t, nil)
	s := c.NewState()

	assert.Equal(t, Idle, s.Current())
	assert.Equal(t, Idle, s.Previous())
	assert.Equal(t, FacingRight, s.Facing())
	assert.Zero(t, s.Velocity())
	assert.False(t, s.CoyoteWindow().Open())
	assert.False(t, s.VariableJumpWindow().Open())
	assert.False(t, s.GroundPoundWindow().Open())
	assert.False(t, s.QuickTurnWindow().Open())
}

func TestEndToEndRunAndJump(t *testing.T) {
	c := newTestController(t, nil)
	s := c.NewState()

	stepN(c, s, Input{Horizontal: 1}, true, 30)
	assert.InDelta(t, 6.0, s.Velocity().X, 1e-9)
	assert.Equal(t, Walking, s.Current())
	assert.Equal(t, FacingRight, s.Facing())

	c.Step(s, Input{Horizontal: 1, Vertical: 1}, true, dt)
	assert.InDelta(t, 2*4/0.65, s.Velocity().Y, 1e-9)
	assert.InDelta(t, 12.3, s.Velocity().Y, 0.01)
	assert.False(t, s.IsGrounded(), "a jump forces the grounded flag off")
	assert.Equal(t, Jumping, s.Current())
	assert.Equal(t, Walking, s.Previous())
	assert.True(t, s.Changed())
}

func TestApexMatchesDerivation(t *testing.T) {
	c := newTestController(t, nil)
	s := c.NewState()
	tu := c.Tuning()

	c.Step(s, Input{Vertical: 1}, true, dt)
	require.InDelta(t, c.Derived().FullJumpVelocity, s.Velocity().Y, 1e-12)

	steps := int(math.Round(tu.ApexTime / dt))
	height := 0.0
	prev := s.Velocity().Y
	for i := 0; i < steps; i++ {
		c.Step(s, Input{Vertical: 1}, false, dt)
		vy := s.Velocity().Y
		height += (prev + vy) / 2 * dt
		prev = vy
	}

	assert.InDelta(t, 0.0, s.Velocity().Y, 1e-9)
	assert.InDelta(t, tu.ApexHeight, height, 1e-6)
}

func TestCoyoteTime(t *testing.T) {
	c := newTestController(t, nil)
	full := c.Derived().FullJumpVelocity

	cases := []struct {
		name     string
		airborne int // airborne steps including the jump step
		jumps    bool
	}{
		{"first airborne step", 1, true},
		{"inside window", 3, true},
		{"last step inside window", 5, true},
		{"at ceiling", 6, false},
		{"well after", 20, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := c.NewState()
			stepN(c, s, Input{Horizontal: 1}, true, 10)
			stepN(c, s, Input{Horizontal: 1}, false, tc.airborne-1)
			c.Step(s, Input{Horizontal: 1, Vertical: 1}, false, dt)

			if tc.jumps {
				assert.InDelta(t, full, s.Velocity().Y, 1e-12)
				assert.False(t, s.CoyoteWindow().Open(), "a jump consumes the coyote window")
			} else {
				assert.Less(t, s.Velocity().Y, 0.0)
			}
		})
	}
}

func TestCoyoteIsSingleUse(t *testing.T) {
	c := newTestController(t, nil)
	s := c.NewState()
	full := c.Derived().FullJumpVelocity

	c.Step(s, Input{}, true, dt)
	c.Step(s, Input{Vertical: 1}, false, dt)
	require.InDelta(t, full, s.Velocity().Y, 1e-12)

	c.Step(s, Input{}, false, dt)
	c.Step(s, Input{Vertical: 1}, false, dt)
	assert.Less(t, s.Velocity().Y, c.Derived().ShortHopVelocity)
}

func TestVariableJumpCutoff(t *testing.T) {
	c := newTestController(t, nil)
	d := c.Derived()

	for release := 1; release <= 6; release++ {
		s := c.NewState()
		c.Step(s, Input{Vertical: 1}, true, dt)
		stepN(c, s, Input{Vertical: 1}, false, release-1)
		c.Step(s, Input{}, false, dt)

		want := d.ShortHopVelocity + d.Gravity*float64(release)*dt
		assert.InDelta(t, want, s.Velocity().Y, 1e-9, "release after %d steps", release)

		// The substituted arc keeps integrating normal gravity afterwards.
		c.Step(s, Input{}, false, dt)
		assert.InDelta(t, want+d.Gravity*dt, s.Velocity().Y, 1e-9)
	}
}

func TestVariableJumpReleaseAfterWindow(t *testing.T) {
	c := newTestController(t, nil)
	d := c.Derived()
	s := c.NewState()

	c.Step(s, Input{Vertical: 1}, true, dt)
	stepN(c, s, Input{Vertical: 1}, false, 6)
	c.Step(s, Input{}, false, dt)

	assert.InDelta(t, d.FullJumpVelocity+d.Gravity*7*dt, s.Velocity().Y, 1e-9)
}

func TestPoundWithoutFreezeDropsAtOnce(t *testing.T) {
	c := newTestController(t, func(tu *Tuning) { tu.GroundPoundFreezeDuration = 0 })
	s := c.NewState()

	c.Step(s, Input{Vertical: 1}, true, dt)
	c.Step(s, Input{Vertical: -1}, false, dt)

	assert.True(t, s.IsGroundPounding())
	assert.InDelta(t, -c.Tuning().TerminalSpeed, s.Velocity().Y, 1e-12)
	assert.False(t, s.VariableJumpWindow().Open(), "pounding ends the short hop window")
}

func ticksToReverse(c *Controller) int {
	s := c.NewState()
	top := c.Tuning().TopSpeed
	stepN(c, s, Input{Horizontal: 1}, true, 60)
	for i := 1; i <= 1000; i++ {
		c.Step(s, Input{Horizontal: -1}, true, dt)
		if s.Velocity().X <= -top+1e-9 {
			return i
		}
	}
	return -1
}

func TestQuickTurnIsFaster(t *testing.T) {
	for _, policy := range []QuickTurnPolicy{QuickTurnThreshold, QuickTurnWindow} {
		t.Run(string(policy), func(t *testing.T) {
			boosted := ticksToReverse(newTestController(t, func(tu *Tuning) { tu.QuickTurnPolicy = policy }))
			plain := ticksToReverse(newTestController(t, func(tu *Tuning) {
				tu.QuickTurnPolicy = policy
				tu.QuickTurnMultiplier = 1
			}))

			require.Positive(t, boosted)
			require.Positive(t, plain)
			assert.Less(t, boosted, plain)
		})
	}
}

func TestQuickTurnWindowOnlyOnGround(t *testing.T) {
	c := newTestController(t, func(tu *Tuning) { tu.QuickTurnPolicy = QuickTurnWindow })
	s := c.NewState()
	stepN(c, s, Input{Horizontal: 1}, true, 60)

	c.Step(s, Input{Horizontal: -1}, false, dt)
	assert.InDelta(t, 6-c.Derived().AccelRate*dt, s.Velocity().X, 1e-9)
}

func TestQuickTurnFromRestIsNotBoosted(t *testing.T) {
	for _, policy := range []QuickTurnPolicy{QuickTurnThreshold, QuickTurnWindow} {
		c := newTestController(t, func(tu *Tuning) { tu.QuickTurnPolicy = policy })
		s := c.NewState()
		c.Step(s, Input{Horizontal: -1}, true, dt)
		assert.InDelta(t, -c.Derived().AccelRate*dt, s.Velocity().X, 1e-12, string(policy))
		assert.Equal(t, FacingLeft, s.Facing())
	}
}

func TestDecelerationStopsAtZero(t *testing.T) {
	c := newTestController(t, nil)
	s := c.NewState()
	stepN(c, s, Input{Horizontal: 1}, true, 60)

	c.Step(s, Input{}, true, dt)
	assert.InDelta(t, 5.0, s.Velocity().X, 1e-9)

	stepN(c, s, Input{}, true, 20)
	assert.Zero(t, s.Velocity().X)
	assert.Equal(t, Idle, s.Current())
	assert.Equal(t, FacingRight, s.Facing(), "facing survives releasing the stick")
}

func TestAirDecelerationIsSlower(t *testing.T) {
	c := newTestController(t, nil)
	s := c.NewState()
	stepN(c, s, Input{Horizontal: 1}, true, 60)

	c.Step(s, Input{}, false, dt)
	assert.InDelta(t, 6-c.Derived().AirDecelRate*dt, s.Velocity().X, 1e-9)
}

func TestGroundPoundLanding(t *testing.T) {
	cases := []struct {
		name     string
		airborne int
		frozen   bool
	}{
		{"mid freeze", 3, true},
		{"mid drop", 12, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController(t, nil)
			s := c.NewState()
			stepN(c, s, Input{}, true, 2)
			c.Step(s, Input{Horizontal: 1, Vertical: 1}, true, dt)
			stepN(c, s, Input{Horizontal: 1, Vertical: -1}, false, tc.airborne)

			require.True(t, s.IsGroundPounding())
			assert.Equal(t, GroundPound, s.Current())
			if tc.frozen {
				assert.Zero(t, s.Velocity(), "freeze zeroes the whole velocity")
			} else {
				assert.InDelta(t, -c.Tuning().TerminalSpeed, s.Velocity().Y, 1e-12)
			}

			c.Step(s, Input{Vertical: -1}, true, dt)
			assert.False(t, s.IsGroundPounding())
			assert.Zero(t, s.Velocity().Y)
			assert.Contains(t, []DiscreteState{Idle, Walking}, s.Current())
			assert.Equal(t, GroundPound, s.Previous())
		})
	}
}

func TestGroundPoundFreezeLength(t *testing.T) {
	c := newTestController(t, nil)
	s := c.NewState()
	c.Step(s, Input{}, false, dt)

	frozen := 0
	for i := 0; i < 20; i++ {
		c.Step(s, Input{Vertical: -1}, false, dt)
		if s.Velocity().Y != 0 {
			break
		}
		frozen++
	}
	assert.Equal(t, 6, frozen)
	assert.InDelta(t, -c.Tuning().TerminalSpeed, s.Velocity().Y, 1e-12)
}

func TestGroundPoundNeedsAirborne(t *testing.T) {
	c := newTestController(t, nil)
	s := c.NewState()
	stepN(c, s, Input{Vertical: -1}, true, 5)
	assert.False(t, s.IsGroundPounding())
	assert.Equal(t, Idle, s.Current())
}

func TestDeathToggle(t *testing.T) {
	c := newTestController(t, nil)
	s := c.NewState()
	stepN(c, s, Input{Horizontal: 1}, true, 10)
	require.Equal(t, Walking, s.Current())

	c.Step(s, Input{Horizontal: 1, DeathToggle: true}, true, dt)
	assert.Equal(t, Dead, s.Current())
	assert.True(t, s.IsDead())
	assert.Zero(t, s.Velocity())

	// Holding the control neither revives nor moves the body.
	stepN(c, s, Input{Horizontal: 1, Vertical: 1, DeathToggle: true}, false, 10)
	assert.Equal(t, Dead, s.Current())
	assert.Zero(t, s.Velocity())

	c.Step(s, Input{}, true, dt)
	assert.Equal(t, Dead, s.Current())

	c.Step(s, Input{DeathToggle: true}, true, dt)
	assert.False(t, s.IsDead())
	assert.Equal(t, Idle, s.Current())
	assert.Equal(t, Dead, s.Previous())
	assert.True(t, s.Changed())
}

func TestKillLatch(t *testing.T) {
	c := newTestController(t, nil)
	s := c.NewState()
	c.Step(s, Input{}, false, dt)
	require.Equal(t, Jumping, s.Current())

	s.Kill()
	c.Step(s, Input{}, false, dt)
	assert.Equal(t, Dead, s.Current())

	s.Reset()
	assert.Equal(t, Idle, s.Current())
	assert.Equal(t, Dead, s.Previous())
	assert.True(t, s.Changed(), "a reset is a state edge")
	assert.False(t, s.IsDead())
	assert.False(t, s.CoyoteWindow().Open())
}

func TestResetFromIdleIsNotAnEdge(t *testing.T) {
	s := NewState()
	s.Reset()
	assert.Equal(t, Idle, s.Previous())
	assert.False(t, s.Changed())
}

func TestLowerTopSpeedClampsCarriedVelocity(t *testing.T) {
	cases := []struct {
		name     string
		grounded bool
	}{
		{"airborne", false},
		{"grounded", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctl := newTestController(t, nil)
			s := ctl.NewState()
			stepN(ctl, s, Input{Horizontal: 1}, true, 60)
			require.InDelta(t, 6.0, s.Velocity().X, 1e-9)

			slow := ctl.Tuning()
			slow.TopSpeed = 4.5
			require.NoError(t, ctl.SetTuning(slow))

			for i := 0; i < 5; i++ {
				ctl.Step(s, Input{}, c.grounded, dt)
				assert.LessOrEqual(t, math.Abs(s.Velocity().X), 4.5+1e-9, "step %d", i)
			}

			ctl.Step(s, Input{Horizontal: -1}, c.grounded, dt)
			assert.LessOrEqual(t, math.Abs(s.Velocity().X), 4.5+1e-9)
		})
	}
}

func TestResetClearsTimers(t *testing.T) {
	c := newTestController(t, nil)
	s := c.NewState()
	c.Step(s, Input{Vertical: 1}, true, dt)
	c.Step(s, Input{Vertical: -1}, false, dt)
	require.True(t, s.IsGroundPounding())

	s.Reset()
	assert.Zero(t, s.Velocity())
	assert.False(t, s.IsGroundPounding())
	assert.False(t, s.VariableJumpWindow().Open())
	assert.False(t, s.GroundPoundWindow().Open())

	// A window left open before the reset must not allow a mid-air jump.
	c.Step(s, Input{Vertical: 1}, false, dt)
	assert.Less(t, s.Velocity().Y, 0.0)
}

func TestVelocityBounds(t *testing.T) {
	for _, policy := range []QuickTurnPolicy{QuickTurnThreshold, QuickTurnWindow} {
		t.Run(string(policy), func(t *testing.T) {
			c := newTestController(t, func(tu *Tuning) { tu.QuickTurnPolicy = policy })
			tu := c.Tuning()
			full := c.Derived().FullJumpVelocity
			rng := rand.New(rand.NewSource(7))
			s := c.NewState()

			for i := 0; i < 20000; i++ {
				in := Input{
					Horizontal:  rng.Float64()*2.4 - 1.2,
					Vertical:    float64(rng.Intn(3) - 1),
					DeathToggle: rng.Intn(200) == 0,
				}
				c.Step(s, in, rng.Intn(4) == 0, dt)

				v := s.Velocity()
				require.LessOrEqual(t, math.Abs(v.X), tu.TopSpeed+1e-9, "step %d", i)
				require.GreaterOrEqual(t, v.Y, -tu.TerminalSpeed-1e-9, "step %d", i)
				require.LessOrEqual(t, v.Y, full+1e-9, "step %d", i)
				if s.IsGrounded() {
					require.False(t, s.IsGroundPounding(), "step %d", i)
				}
			}
		})
	}
}

func TestDeterministicSteps(t *testing.T) {
	run := func() []byte {
		c := newTestController(t, nil)
		s := c.NewState()
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 2000; i++ {
			c.Step(s, Input{Horizontal: rng.Float64()*2 - 1, Vertical: float64(rng.Intn(3) - 1)}, rng.Intn(3) == 0, dt)
		}
		return s.AppendBinary(nil)
	}
	assert.Equal(t, run(), run())
}

func TestInputClamp(t *testing.T) {
	in := Input{Horizontal: 3, Vertical: math.NaN()}.Clamped()
	assert.Equal(t, 1.0, in.Horizontal)
	assert.Equal(t, 0.0, in.Vertical)
}
