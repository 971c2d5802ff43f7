package system

import (
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// RespawnSystem requests a respawn for players below the level's kill plane
// and performs pending requests. It runs after physics so the teleport is
// not undone by the same tick's integration.
type RespawnSystem struct {
	physics *PhysicsSystem
}

func NewRespawnSystem(physics *PhysicsSystem) *RespawnSystem {
	return &RespawnSystem{physics: physics}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.checkKillPlane(w)

	for _, e := range w.Query(component.RespawnRequestComponent.Kind()) {
		s.respawn(w, e)
		ecs.Remove(w, e, component.RespawnRequestComponent.Kind())
	}
}

func (s *RespawnSystem) checkKillPlane(w *ecs.World) {
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, _ := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())

	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if t.Y >= bounds.KillY || ecs.Has(w, e, component.RespawnRequestComponent.Kind()) {
			continue
		}
		if err := ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{}); err != nil {
			log.Printf("respawn: request for %v: %v", e, err)
		}
	}
}

func (s *RespawnSystem) respawn(w *ecs.World, e ecs.Entity) {
	spawn, ok := ecs.Get(w, e, component.SpawnPointComponent.Kind())
	if !ok {
		if se, found := w.First(component.SpawnPointComponent.Kind()); found {
			spawn, ok = ecs.Get(w, se, component.SpawnPointComponent.Kind())
		}
	}
	if !ok {
		log.Printf("respawn: no spawn point for %v", e)
		return
	}

	if s.physics != nil {
		s.physics.Teleport(w, e, spawn.X, spawn.Y)
	} else if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = spawn.X, spawn.Y
	}

	if m, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok && m.State != nil {
		m.State.Reset()
	}
	log.Printf("respawn: %v at (%.2f, %.2f)", e, spawn.X, spawn.Y)
}
