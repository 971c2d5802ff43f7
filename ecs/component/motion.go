package component

import "github.com/milk9111/platformer/motion"

// Motion binds a character to its controller and the state it owns.
type Motion struct {
	Controller *motion.Controller
	State      *motion.State
	Preset     string
}

var MotionComponent = NewComponent[Motion]()
