package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Viewport maps y-up world units to y-down screen pixels around a centre.
type Viewport struct {
	Center mgl64.Vec2
	Scale  float64
	Width  float64
	Height float64
}

// ToScreen returns the pixel position of v, snapped to whole pixels so
// static geometry does not shimmer while the camera eases.
func (vp Viewport) ToScreen(v cp.Vector) (float32, float32) {
	x := (v.X-vp.Center.X())*vp.Scale + vp.Width/2
	y := vp.Height/2 - (v.Y-vp.Center.Y())*vp.Scale
	return math32.Round(float32(x)), math32.Round(float32(y))
}

// RectToScreen returns the top-left corner and size in pixels of a world
// box.
func (vp Viewport) RectToScreen(bb cp.BB) (x, y, w, h float32) {
	x0, y0 := vp.ToScreen(cp.Vector{X: bb.L, Y: bb.T})
	x1, y1 := vp.ToScreen(cp.Vector{X: bb.R, Y: bb.B})
	return x0, y0, x1 - x0, y1 - y0
}

// Visible reports whether any part of bb is on screen.
func (vp Viewport) Visible(bb cp.BB) bool {
	halfW := vp.Width / 2 / vp.Scale
	halfH := vp.Height / 2 / vp.Scale
	view := cp.BB{
		L: vp.Center.X() - halfW,
		R: vp.Center.X() + halfW,
		B: vp.Center.Y() - halfH,
		T: vp.Center.Y() + halfH,
	}
	return view.Intersects(bb)
}
