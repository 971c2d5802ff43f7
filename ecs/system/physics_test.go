package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addFloor(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: -0.5}))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 20, Height: 1, Static: true}))
	return e
}

func addBody(t *testing.T, w *ecs.World, e ecs.Entity) *component.PhysicsBody {
	t.Helper()
	body := &component.PhysicsBody{Width: 0.8, Height: 1, Mass: 1, Category: motion.PlayerCategory}
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body))
	return body
}

func TestPhysicsSyncCreatesBodies(t *testing.T) {
	w := ecs.NewWorld()
	floor := addFloor(t, w)
	e, _ := addMover(t, w, 1, 3)
	addBody(t, w, e)

	ps := NewPhysicsSystem(dt)
	ps.Sync(w)
	require.Len(t, ps.entities, 2)

	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	require.NotNil(t, body.Body)
	assert.Equal(t, cp.Vector{X: 1, Y: 3}, body.Body.Position())
	assert.Equal(t, motion.PlayerCategory, body.Shape.Filter.Categories)

	floorBody, _ := ecs.Get(w, floor, component.PhysicsBodyComponent.Kind())
	assert.Equal(t, ps.Space().StaticBody, floorBody.Body)
	assert.Equal(t, motion.GroundCategory, floorBody.Shape.Filter.Categories, "category defaults to ground")
	assert.Equal(t, 0.0, floorBody.Shape.BB().T)

	sensor := motion.NewSpaceSensor(ps.Space(), motion.DefaultTuning())
	assert.True(t, sensor.Probe(cp.Vector{X: 0, Y: 0.5}), "static geometry is queryable before the first step")
	assert.False(t, sensor.Probe(cp.Vector{X: 1, Y: 3.5}), "the player's own shape is not ground")
}

func TestPhysicsSkipsEmptyBodies(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{}))

	ps := NewPhysicsSystem(dt)
	ps.Sync(w)
	assert.Empty(t, ps.entities)
}

func TestPhysicsAppliesControllerVelocity(t *testing.T) {
	w := ecs.NewWorld()
	e, m := addMover(t, w, 0, 5)
	addBody(t, w, e)

	ps := NewPhysicsSystem(dt)
	m.Controller.Step(m.State, motion.Input{Horizontal: 1}, false, dt)
	v := m.State.Velocity()
	require.Greater(t, v.X, 0.0)
	require.Less(t, v.Y, 0.0)

	ps.Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, v.X*dt, tr.X, 1e-9)
	assert.InDelta(t, 5+v.Y*dt, tr.Y, 1e-9)
}

func TestPhysicsBodyLandsOnFloor(t *testing.T) {
	w := ecs.NewWorld()
	addFloor(t, w)
	e, m := addMover(t, w, 0, 2)
	addBody(t, w, e)

	ps := NewPhysicsSystem(dt)
	ps.Sync(w)
	ms := NewMotionSystem(motion.NewSpaceSensor(ps.Space(), motion.DefaultTuning()), dt)

	for i := 0; i < 90; i++ {
		ms.Update(w)
		ps.Update(w)
	}

	assert.True(t, m.State.IsGrounded())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 0.5, tr.Y, 0.12)
}

func TestPhysicsRemovesDestroyedEntities(t *testing.T) {
	w := ecs.NewWorld()
	floor := addFloor(t, w)
	e, _ := addMover(t, w, 0, 2)
	addBody(t, w, e)

	ps := NewPhysicsSystem(dt)
	ps.Sync(w)
	require.Len(t, ps.entities, 2)

	require.True(t, w.DestroyEntity(e))
	ecs.Remove(w, floor, component.PhysicsBodyComponent.Kind())
	ps.Sync(w)
	assert.Empty(t, ps.entities)

	sensor := motion.NewSpaceSensor(ps.Space(), motion.DefaultTuning())
	assert.False(t, sensor.Probe(cp.Vector{X: 0, Y: 0.5}), "removed floor no longer answers probes")
}

func TestTeleport(t *testing.T) {
	w := ecs.NewWorld()
	e, m := addMover(t, w, 0, 5)
	addBody(t, w, e)

	ps := NewPhysicsSystem(dt)
	m.Controller.Step(m.State, motion.Input{Horizontal: 1}, false, dt)
	ps.Update(w)

	ps.Teleport(w, e, 3, 4)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Equal(t, component.Transform{X: 3, Y: 4}, *tr)
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	assert.Equal(t, cp.Vector{X: 3, Y: 4}, body.Body.Position())
	assert.Equal(t, cp.Vector{}, body.Body.Velocity())
}
