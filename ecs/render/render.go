package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var background = color.RGBA{R: 0x14, G: 0x16, B: 0x22, A: 0xff}

type Renderer struct {
	Debug bool
	face  text.Face
}

func NewRenderer() *Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Viewport returns the view of the world's camera for a screen of the
// given size.
func (r *Renderer) Viewport(w *ecs.World, width, height float64) Viewport {
	vp := Viewport{Scale: common.PixelsPerUnit, Width: width, Height: height}
	if camEntity, ok := w.First(component.CameraTagComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
			vp.Center = system.View(cam)
		}
	}
	return vp
}

// Draw paints level tiles, characters and, in debug mode, the physics
// shapes and ground probes.
func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World, space *cp.Space) {
	if screen == nil || w == nil {
		return
	}
	screen.Fill(background)

	b := screen.Bounds()
	vp := r.Viewport(w, float64(b.Dx()), float64(b.Dy()))

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		bb := cp.NewBBForExtents(cp.Vector{X: t.X, Y: t.Y}, s.Width/2, s.Height/2)
		if !vp.Visible(bb) {
			return
		}
		x, y, wd, ht := vp.RectToScreen(bb)
		vector.DrawFilledRect(screen, x, y, wd, ht, s.Color, false)

		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			r.drawPlayerDetails(screen, w, e, x, y, wd, ht, s)
		}
	})

	if r.Debug {
		if space != nil {
			DrawPhysicsDebug(space, vp, screen)
		}
		r.drawProbes(screen, w, vp)
		DrawPlayerStateDebug(w, screen)
	}
}

// drawPlayerDetails marks the facing side and prints the active clip.
func (r *Renderer) drawPlayerDetails(screen *ebiten.Image, w *ecs.World, e ecs.Entity, x, y, wd, ht float32, s *component.Sprite) {
	eyeX := x + wd*0.7
	if s.FlipX {
		eyeX = x + wd*0.3
	}
	vector.DrawFilledRect(screen, eyeX-2, y+ht*0.25, 4, 4, colornames.White, false)

	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok || anim.Current == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-16)
	op.ColorScale.ScaleWithColor(colornames.Lightgrey)
	text.Draw(screen, anim.Current, r.face, op)
}

func (r *Renderer) drawProbes(screen *ebiten.Image, w *ecs.World, vp Viewport) {
	ecs.ForEach(w, component.GroundProbeComponent.Kind(), func(_ ecs.Entity, p *component.GroundProbe) {
		x, y, wd, ht := vp.RectToScreen(p.Box)
		if p.Hit {
			vector.DrawFilledRect(screen, x, y, wd, ht, color.NRGBA{R: 0xff, G: 0xff, A: 0x60}, false)
		}
		vector.StrokeRect(screen, x, y, wd, ht, 1, colornames.Yellow, false)
	})
}

func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	m, ok := ecs.Get(w, player, component.MotionComponent.Kind())
	if !ok || m.State == nil {
		return
	}
	s := m.State
	v := s.Velocity()
	msg := fmt.Sprintf("State: %s (was %s)\nPreset: %s\nVelocity: %.2f, %.2f\nGrounded: %v\nFacing: %s\nGroundPound: %v",
		s.Current(), s.Previous(), m.Preset, v.X, v.Y, s.IsGrounded(), s.Facing(), s.IsGroundPounding())
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		msg += fmt.Sprintf("\nPosition: %.2f, %.2f", t.X, t.Y)
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 30)
}
