package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func NewCameraAt(w *ecs.World, spec *prefabs.CameraSpec, x, y float64) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("camera: world is nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("camera: spec is nil")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		X:          x + spec.OffsetX,
		Y:          y + spec.OffsetY,
		OffsetX:    spec.OffsetX,
		OffsetY:    spec.OffsetY,
		Smoothing:  spec.Smoothing,
		HalfWidth:  spec.HalfWidth,
		HalfHeight: spec.HalfHeight,
		ShakeSeed:  spec.ShakeSeed,
	}); err != nil {
		return 0, err
	}
	return e, nil
}
