package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

// AnimationSystem starts a clip only on a discrete-state edge so a steady
// state never restarts its clip, and mirrors sprites by facing.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.MotionComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, m *component.Motion, anim *component.Animation) {
		if m.State == nil {
			return
		}

		if anim.Current == "" || m.State.Changed() {
			anim.Current = ClipFor(anim, m.State.Current())
			anim.Frame = 0
			anim.Starts++
		} else {
			anim.Frame++
		}

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.FlipX = m.State.Facing() == motion.FacingLeft
		}
	})
}

// ClipFor returns the clip registered for s, or the state's name.
func ClipFor(anim *component.Animation, s motion.DiscreteState) string {
	if clip, ok := anim.Clips[s]; ok && clip != "" {
		return clip
	}
	return s.String()
}
