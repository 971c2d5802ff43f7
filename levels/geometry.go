package levels

import (
	"strings"

	"github.com/jakecoffman/cp"
)

// Rect is a block of tiles in grid coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// BB converts r to a y-up world box for a level levelHeight rows tall.
func (r Rect) BB(levelHeight int) cp.BB {
	return cp.BB{
		L: float64(r.X),
		R: float64(r.X + r.Width),
		B: float64(levelHeight - r.Y - r.Height),
		T: float64(levelHeight - r.Y),
	}
}

// MergeTiles covers the non-empty tiles of layer with as few rectangles as
// a greedy scan finds: each run is grown right first, then down.
func MergeTiles(layer []int, width, height int) []Rect {
	if width <= 0 || height <= 0 {
		return nil
	}
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	solid := func(x, y int) bool {
		idx := index(x, y)
		return idx < len(layer) && !visited[idx] && layer[idx] > 0
	}

	var rects []Rect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !solid(x, y) {
				continue
			}

			w := 0
			for x2 := x; x2 < width && solid(x2, y); x2++ {
				w++
			}

			h := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+w; x2++ {
					if !solid(x2, y2) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					visited[index(xx, yy)] = true
				}
			}
			rects = append(rects, Rect{X: x, Y: y, Width: w, Height: h})
		}
	}
	return rects
}

// SolidBoxes returns merged world boxes for every physics layer.
func (l *Level) SolidBoxes() []cp.BB {
	var out []cp.BB
	for i, layer := range l.Layers {
		if !l.Physics(i) {
			continue
		}
		for _, r := range MergeTiles(layer, l.Width, l.Height) {
			out = append(out, r.BB(l.Height))
		}
	}
	return out
}

// Bounds is the world box covered by the grid.
func (l *Level) Bounds() cp.BB {
	return cp.BB{L: 0, B: 0, R: float64(l.Width), T: float64(l.Height)}
}

func (l *Level) KillY() float64 {
	return -KillMargin
}

// Spawn returns the world centre of the first player or spawn entity, or
// the middle of the top row when the level has none.
func (l *Level) Spawn() cp.Vector {
	for _, ent := range l.Entities {
		switch strings.ToLower(ent.Type) {
		case "player", "spawn":
			return l.TileCenter(ent.X, ent.Y)
		}
	}
	return l.TileCenter(l.Width/2, 0)
}

// TileCenter converts grid cell (x, y) to its y-up world centre.
func (l *Level) TileCenter(x, y int) cp.Vector {
	return cp.Vector{X: float64(x) + 0.5, Y: float64(l.Height-y) - 0.5}
}
