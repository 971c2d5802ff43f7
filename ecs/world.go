package ecs

import (
	"sort"

	"github.com/milk9111/platformer/ecs/component"
)

// World owns entities and one sparse set per component kind.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity kills e and drops all of its components. It reports false
// for handles that were already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.removeSlot(e)
	}
	return true
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in creation-slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.live()
}

func (w *World) IsAlive(e Entity) bool { return IsAlive(w, e) }

func (w *World) DestroyEntity(e Entity) bool { return DestroyEntity(w, e) }

func (w *World) store(id component.ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}

// Query returns the live entities owning every listed kind, sorted by
// entity id so iteration order is stable across runs.
func (w *World) Query(kinds ...component.KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	sets := make([]*sparseSet, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok || s.len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}

	out := intersect(sets)
	live := out[:0]
	for _, e := range out {
		if w.entities.isAlive(e) {
			live = append(live, e)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].id() < live[j].id() })
	return live
}

// First returns the lowest-id live entity owning kind.
func (w *World) First(kind component.KindID) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func First(w *World, kind component.KindID) (Entity, bool) {
	return w.First(kind)
}
