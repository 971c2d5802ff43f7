package component

import "github.com/milk9111/platformer/motion"

// Input stores this tick's sampled intent for an entity.
type Input struct {
	MoveX float64
	MoveY float64
	Death bool
}

func (in Input) ToMotion() motion.Input {
	return motion.Input{Horizontal: in.MoveX, Vertical: in.MoveY, DeathToggle: in.Death}
}

var InputComponent = NewComponent[Input]()
