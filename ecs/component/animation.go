package component

import "github.com/milk9111/platformer/motion"

// Animation maps discrete motion states to clip names. Frame counts ticks
// since Current started; Starts counts clip changes.
type Animation struct {
	Clips   map[motion.DiscreteState]string
	Current string
	Frame   int
	Starts  int
}

var AnimationComponent = NewComponent[Animation]()
