package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationStartsClipsOnEdgesOnly(t *testing.T) {
	w := ecs.NewWorld()
	e, m := addMover(t, w, 0, 0)
	anim := &component.Animation{Clips: map[motion.DiscreteState]string{
		motion.Idle:    "idle_clip",
		motion.Walking: "walk_clip",
	}}
	require.NoError(t, ecs.Add(w, e, component.AnimationComponent.Kind(), anim))
	require.NoError(t, ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}))

	sys := NewAnimationSystem()
	step := func(in motion.Input, grounded bool) {
		m.Controller.Step(m.State, in, grounded, dt)
		sys.Update(w)
	}

	step(motion.Input{}, true)
	assert.Equal(t, "idle_clip", anim.Current)
	assert.Equal(t, 1, anim.Starts)

	for i := 0; i < 10; i++ {
		step(motion.Input{}, true)
	}
	assert.Equal(t, 1, anim.Starts, "a steady state never restarts its clip")
	assert.Equal(t, 10, anim.Frame)

	step(motion.Input{Horizontal: -1}, true)
	assert.Equal(t, "walk_clip", anim.Current)
	assert.Equal(t, 2, anim.Starts)
	assert.Equal(t, 0, anim.Frame)

	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	assert.True(t, sprite.FlipX, "facing left mirrors the sprite")

	step(motion.Input{}, false)
	assert.Equal(t, "jumping", anim.Current, "states without a clip fall back to their name")
	assert.Equal(t, 3, anim.Starts)
}

func TestAnimationRestartsClipOnRespawn(t *testing.T) {
	w := ecs.NewWorld()
	e, m := addPlayer(t, w, 5, 5)
	anim := &component.Animation{Clips: map[motion.DiscreteState]string{
		motion.Idle:    "idle_clip",
		motion.Walking: "walk_clip",
	}}
	require.NoError(t, ecs.Add(w, e, component.AnimationComponent.Kind(), anim))

	sys := NewAnimationSystem()
	for i := 0; i < 10; i++ {
		m.Controller.Step(m.State, motion.Input{Horizontal: 1}, true, dt)
		sys.Update(w)
	}
	require.Equal(t, "walk_clip", anim.Current)
	starts := anim.Starts

	require.NoError(t, ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{}))
	NewRespawnSystem(nil).Update(w)
	sys.Update(w)

	assert.Equal(t, motion.Idle, m.State.Current())
	assert.Equal(t, "idle_clip", anim.Current, "respawn switches clip on the same tick")
	assert.Equal(t, starts+1, anim.Starts)
	assert.Equal(t, 0, anim.Frame)
}

func TestClipFor(t *testing.T) {
	anim := &component.Animation{Clips: map[motion.DiscreteState]string{motion.Dead: ""}}
	assert.Equal(t, "dead", ClipFor(anim, motion.Dead))
	assert.Equal(t, "ground_pound", ClipFor(&component.Animation{}, motion.GroundPound))
}
