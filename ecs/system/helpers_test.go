package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

// addMover creates an entity with the components the motion pipeline reads.
func addMover(t *testing.T, w *ecs.World, x, y float64) (ecs.Entity, *component.Motion) {
	t.Helper()
	c, err := motion.NewController(motion.DefaultTuning())
	require.NoError(t, err)

	e := ecs.CreateEntity(w)
	m := &component.Motion{Controller: c, State: c.NewState(), Preset: "default"}
	require.NoError(t, ecs.Add(w, e, component.MotionComponent.Kind(), m))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	return e, m
}
