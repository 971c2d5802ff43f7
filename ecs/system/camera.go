package system

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CameraSystem eases the camera toward the player plus its offset, applies
// shake, and keeps the view inside the level's left, right and bottom edges.
type CameraSystem struct {
	dt  float64
	rng *rand.Rand
}

func NewCameraSystem(dt float64, seed int64) *CameraSystem {
	return &CameraSystem{dt: dt, rng: rand.New(rand.NewSource(seed))}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := w.First(component.CameraTagComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	cs.collectShake(w, cam)

	target, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	desired := mgl64.Vec2{t.X + cam.OffsetX, t.Y + cam.OffsetY}
	pos := mgl64.Vec2{cam.X, cam.Y}
	if !cam.Snapped {
		pos = desired
		cam.Snapped = true
	} else {
		pos = pos.Add(desired.Sub(pos).Mul(common.SmoothFactor(cam.Smoothing, cs.dt)))
	}

	if boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		bounds, _ := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
		pos = clampToBounds(pos, cam, bounds)
	}
	cam.X, cam.Y = pos.X(), pos.Y()

	shake := cs.nextShake(cam)
	cam.ShakeX, cam.ShakeY = shake.X(), shake.Y()
}

// View returns the camera centre including shake.
func View(cam *component.Camera) mgl64.Vec2 {
	return mgl64.Vec2{cam.X + cam.ShakeX, cam.Y + cam.ShakeY}
}

func (cs *CameraSystem) collectShake(w *ecs.World, cam *component.Camera) {
	for _, e := range w.Query(component.CameraShakeRequestComponent.Kind()) {
		req, _ := ecs.Get(w, e, component.CameraShakeRequestComponent.Kind())
		if req.Duration > cam.ShakeRemaining {
			cam.ShakeRemaining = req.Duration
		}
		if req.Intensity > cam.ShakeIntensity || cam.ShakeRemaining <= 0 {
			cam.ShakeIntensity = req.Intensity
		}
		ecs.Remove(w, e, component.CameraShakeRequestComponent.Kind())
	}
}

func (cs *CameraSystem) nextShake(cam *component.Camera) mgl64.Vec2 {
	if cam.ShakeRemaining <= 0 {
		cam.ShakeIntensity = 0
		return mgl64.Vec2{}
	}
	cam.ShakeRemaining -= cs.dt
	return cs.insideUnitCircle().Mul(cam.ShakeIntensity)
}

func (cs *CameraSystem) insideUnitCircle() mgl64.Vec2 {
	for {
		v := mgl64.Vec2{cs.rng.Float64()*2 - 1, cs.rng.Float64()*2 - 1}
		if v.Dot(v) <= 1 {
			return v
		}
	}
}

func clampToBounds(pos mgl64.Vec2, cam *component.Camera, b *component.LevelBounds) mgl64.Vec2 {
	left := b.MinX + cam.HalfWidth
	right := b.MaxX - cam.HalfWidth
	x := pos.X()
	if left > right {
		x = (b.MinX + b.MaxX) / 2
	} else {
		x = common.Clamp(x, left, right)
	}

	y := pos.Y()
	if bottom := b.MinY + cam.HalfHeight; y < bottom {
		y = bottom
	}
	return mgl64.Vec2{x, y}
}
