package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlayerAt builds the controllable character centred on spawn. The
// controller is created from t; preset is only recorded for display.
func NewPlayerAt(w *ecs.World, spec *prefabs.PlayerSpec, preset string, t motion.Tuning, spawn cp.Vector) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("player: world is nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("player: spec is nil")
	}

	controller, err := motion.NewController(t)
	if err != nil {
		return 0, fmt.Errorf("player: preset %q: %w", preset, err)
	}
	clips, err := spec.ClipMap()
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spawn.X, Y: spawn.Y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpawnPointComponent.Kind(), &component.SpawnPoint{X: spawn.X, Y: spawn.Y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    spec.Body.Width,
		Height:   spec.Body.Height,
		Mass:     spec.Body.Mass,
		Friction: spec.Body.Friction,
		Category: motion.PlayerCategory,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{
		Controller: controller,
		State:      controller.NewState(),
		Preset:     preset,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.GroundProbeComponent.Kind(), &component.GroundProbe{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Clips: clips}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  spec.Body.Width,
		Height: spec.Body.Height,
		Color:  spec.Color.RGBA,
	}); err != nil {
		return 0, err
	}
	return e, nil
}
