package motion

import (
	"encoding/binary"
	"math"

	"github.com/jakecoffman/cp"
)

// DiscreteState classifies the character's motion for collaborators such as
// the animation layer.
type DiscreteState uint8

const (
	Idle DiscreteState = iota
	Walking
	Jumping
	GroundPound
	Dead
)

func (s DiscreteState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Jumping:
		return "jumping"
	case GroundPound:
		return "ground_pound"
	case Dead:
		return "dead"
	}
	return "unknown"
}

// ParseDiscreteState is the inverse of DiscreteState.String.
func ParseDiscreteState(name string) (DiscreteState, bool) {
	for s := Idle; s <= Dead; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// Facing is the last horizontal direction the player asked for.
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// State is the mutable motion of one character. Only Controller.Step and
// Reset mutate it; collaborators read it through the accessors or a
// Snapshot.
type State struct {
	velocity cp.Vector
	current  DiscreteState
	previous DiscreteState
	facing   Facing

	grounded       bool
	groundPounding bool
	dead           bool

	coyote       Window
	variableJump Window
	groundPound  Window
	quickTurn    Window

	// turnDir is the input direction the quick turn window was evaluated
	// against last step; 0 when there was no horizontal input.
	turnDir      float64
	prevVertical float64
	prevDeath    bool
}

// NewState returns a character at rest in Idle with every window closed.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset zeroes velocity, flags and timers and returns to Idle. Facing and
// the input edge history survive so a held control does not fire again.
// The state before the reset becomes previous, so Changed reports the edge.
func (s *State) Reset() {
	s.velocity = cp.Vector{}
	s.previous = s.current
	s.current = Idle
	s.grounded = false
	s.groundPounding = false
	s.dead = false
	s.coyote = NewWindow(s.coyote.ceiling)
	s.variableJump = NewWindow(s.variableJump.ceiling)
	s.groundPound = NewWindow(s.groundPound.ceiling)
	s.quickTurn = NewWindow(s.quickTurn.ceiling)
	s.turnDir = 0
}

// Kill sets the death latch. The next step moves the state machine to Dead.
func (s *State) Kill() {
	s.dead = true
}

func (s *State) Velocity() cp.Vector { return s.velocity }
func (s *State) Current() DiscreteState { return s.current }
func (s *State) Previous() DiscreteState { return s.previous }
func (s *State) Facing() Facing { return s.facing }
func (s *State) IsGrounded() bool { return s.grounded }
func (s *State) IsGroundPounding() bool { return s.groundPounding }
func (s *State) IsDead() bool { return s.dead }
func (s *State) IsWalking() bool { return s.velocity.X != 0 }
func (s *State) Changed() bool { return s.previous != s.current }
func (s *State) CoyoteWindow() Window { return s.coyote }
func (s *State) VariableJumpWindow() Window { return s.variableJump }
func (s *State) GroundPoundWindow() Window { return s.groundPound }
func (s *State) QuickTurnWindow() Window { return s.quickTurn }

// Snapshot is a read-only copy of the parts of State collaborators use.
type Snapshot struct {
	Velocity       cp.Vector
	State          DiscreteState
	Previous       DiscreteState
	Facing         Facing
	Grounded       bool
	GroundPounding bool
	Dead           bool
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Velocity:       s.velocity,
		State:          s.current,
		Previous:       s.previous,
		Facing:         s.facing,
		Grounded:       s.grounded,
		GroundPounding: s.groundPounding,
		Dead:           s.dead,
	}
}

// AppendBinary appends a fixed little-endian encoding of every field that
// influences future steps. Equal encodings mean equal futures under equal
// input.
func (s *State) AppendBinary(b []byte) []byte {
	floats := []float64{
		s.velocity.X, s.velocity.Y,
		s.coyote.value, s.variableJump.value, s.groundPound.value, s.quickTurn.value,
		s.turnDir, s.prevVertical,
	}
	for _, f := range floats {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(f))
	}
	return append(b,
		byte(s.current), byte(s.previous), byte(s.facing),
		boolByte(s.grounded), boolByte(s.groundPounding), boolByte(s.dead), boolByte(s.prevDeath),
	)
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
