package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// InputSource produces the input sample for one tick.
type InputSource interface {
	Sample(tick uint64) component.Input
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func(tick uint64) component.Input

func (f InputSourceFunc) Sample(tick uint64) component.Input { return f(tick) }

// InputSystem copies one sample per tick into every Input component.
type InputSystem struct {
	source InputSource
	tick   uint64
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) SetSource(source InputSource) {
	i.source = source
}

// Tick is the number of samples taken so far.
func (i *InputSystem) Tick() uint64 {
	return i.tick
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	sample := i.source.Sample(i.tick)
	i.tick++

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = sample
	})
}
