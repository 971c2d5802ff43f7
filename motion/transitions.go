package motion

// Facts are the per-step observations the state machine classifies.
type Facts struct {
	Grounded       bool
	Moving         bool
	GroundPounding bool
	Dead           bool
}

type condition uint8

const (
	whenAirborne condition = iota
	whenMoving
	whenStopped
	whenGroundedMoving
	whenGroundedStopped
	whenGroundPounding
)

func (c condition) holds(f Facts) bool {
	switch c {
	case whenAirborne:
		return !f.Grounded
	case whenMoving:
		return f.Moving
	case whenStopped:
		return !f.Moving
	case whenGroundedMoving:
		return f.Grounded && f.Moving
	case whenGroundedStopped:
		return f.Grounded && !f.Moving
	case whenGroundPounding:
		return f.GroundPounding
	}
	return false
}

type transition struct {
	when condition
	to   DiscreteState
}

// transitions lists, per state, the rules tried in order. The first rule
// that holds wins; no rule holding keeps the state. Dead has no rules: it is
// left only through State.Reset.
var transitions = [...][]transition{
	Idle: {
		{when: whenAirborne, to: Jumping},
		{when: whenMoving, to: Walking},
	},
	Walking: {
		{when: whenAirborne, to: Jumping},
		{when: whenStopped, to: Idle},
	},
	Jumping: {
		{when: whenGroundedMoving, to: Walking},
		{when: whenGroundedStopped, to: Idle},
		{when: whenGroundPounding, to: GroundPound},
	},
	GroundPound: {
		{when: whenGroundedMoving, to: Walking},
		{when: whenGroundedStopped, to: Idle},
	},
	Dead: nil,
}

// Next returns the state that follows cur given f. The death latch overrides
// every rule.
func Next(cur DiscreteState, f Facts) DiscreteState {
	if f.Dead {
		return Dead
	}
	if int(cur) >= len(transitions) {
		return cur
	}
	for _, tr := range transitions[cur] {
		if tr.when.holds(f) {
			return tr.to
		}
	}
	return cur
}

func (s *State) facts() Facts {
	return Facts{
		Grounded:       s.grounded,
		Moving:         s.velocity.X != 0,
		GroundPounding: s.groundPounding,
		Dead:           s.dead,
	}
}
