package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// PhysicsSystem integrates controller velocities with Chipmunk2D. The space
// has no gravity of its own: the motion controller owns vertical motion and
// the space only resolves contacts.
type PhysicsSystem struct {
	space    *cp.Space
	dt       float64
	entities map[ecs.Entity]*bodyInfo
}

func NewPhysicsSystem(dt float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:    space,
		dt:       dt,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.Sync(w)
	ps.applyMotion(w)
	ps.space.Step(ps.dt)
	ps.syncTransforms(w)
}

// Sync creates bodies for new PhysicsBody entities and removes bodies of
// destroyed ones. It is safe to call before the first Update so static
// geometry is queryable on tick zero.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		if _, ok := ps.entities[e]; ok {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		info := ps.createBodyInfo(*transform, *bodyComp)
		if info == nil {
			continue
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if !info.static && info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody) *bodyInfo {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		log.Printf("physics: skipping body with size %.2fx%.2f", width, height)
		return nil
	}

	category := bodyComp.Category
	if category == 0 {
		category = motion.GroundCategory
	}
	filter := cp.ShapeFilter{Group: 0, Categories: category, Mask: ^uint(0)}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	// Infinite moment keeps the box upright.
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetFilter(filter)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

// applyMotion hands each controller's velocity to its body.
func (ps *PhysicsSystem) applyMotion(w *ecs.World) {
	ecs.ForEach2(w, component.MotionComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, m *component.Motion, body *component.PhysicsBody) {
		if body.Body == nil || body.Static || m.State == nil {
			return
		}
		body.Body.SetVelocityVector(m.State.Velocity())
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Body == nil || body.Static {
			return
		}
		pos := body.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}

// Teleport moves e's body and transform to (x, y) and stops it.
func (ps *PhysicsSystem) Teleport(w *ecs.World, e ecs.Entity, x, y float64) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X = x
		t.Y = y
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil && !body.Static {
		body.Body.SetPosition(cp.Vector{X: x, Y: y})
		body.Body.SetVelocityVector(cp.Vector{})
	}
}
