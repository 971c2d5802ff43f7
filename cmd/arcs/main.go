package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/motion"
	"github.com/milk9111/platformer/prefabs"
)

const (
	screenSize = 512
	scale      = 24.0
	maxTicks   = 600
)

// arc is the sampled path of one jump, feet position per step.
type arc struct {
	points []cp.Vector
}

type preset struct {
	name string
	full arc
	hop  arc
}

type arcGame struct {
	presets []preset
	current int
	tick    int
}

func (g *arcGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.current = (g.current + 1) % len(g.presets)
		g.tick = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.current = (g.current + len(g.presets) - 1) % len(g.presets)
		g.tick = 0
	}
	g.tick++
	if g.tick >= len(g.presets[g.current].full.points) {
		g.tick = 0
	}
	return nil
}

func (g *arcGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x18, 0xff})
	p := g.presets[g.current]

	ox, oy := float32(32), float32(screenSize-64)
	vector.StrokeLine(screen, 0, oy, screenSize, oy, 1, color.RGBA{0x60, 0x60, 0x60, 0xff}, false)

	drawArc(screen, p.hop, ox, oy, color.RGBA{0xff, 0xa0, 0x40, 0xff})
	drawArc(screen, p.full, ox, oy, color.RGBA{0x4a, 0xa3, 0xff, 0xff})

	if g.tick < len(p.full.points) {
		pt := p.full.points[g.tick]
		x, y := toScreen(pt, ox, oy)
		vector.DrawFilledRect(screen, x-4, y-8, 8, 8, color.White, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("preset %q (%d/%d)  left/right to cycle", p.name, g.current+1, len(g.presets)), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("full jump peak %.2f  short hop peak %.2f", peak(p.full), peak(p.hop)), 8, 24)
}

func (g *arcGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func drawArc(screen *ebiten.Image, a arc, ox, oy float32, c color.Color) {
	for i := 1; i < len(a.points); i++ {
		x0, y0 := toScreen(a.points[i-1], ox, oy)
		x1, y1 := toScreen(a.points[i], ox, oy)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, c, false)
	}
}

func toScreen(p cp.Vector, ox, oy float32) (float32, float32) {
	return ox + float32(p.X*scale), oy - float32(p.Y*scale)
}

func peak(a arc) float64 {
	top := 0.0
	for _, p := range a.points {
		top = max(top, p.Y)
	}
	return top
}

// simulate runs a running jump on flat ground at y=0 and returns the path
// until the player lands again. holdTicks is how long jump stays held.
func simulate(t motion.Tuning, holdTicks int) (arc, error) {
	c, err := motion.NewController(t)
	if err != nil {
		return arc{}, err
	}
	s := c.NewState()

	var pos cp.Vector
	a := arc{points: []cp.Vector{pos}}
	left := false
	for tick := 0; tick < maxTicks; tick++ {
		in := motion.Input{Horizontal: 1}
		if tick > 0 && tick <= holdTicks {
			in.Vertical = 1
		}
		c.Step(s, in, pos.Y <= 0, common.FixedDelta)

		pos = pos.Add(s.Velocity().Mult(common.FixedDelta))
		if pos.Y < 0 {
			pos.Y = 0
		}
		a.points = append(a.points, pos)

		if pos.Y > 0 {
			left = true
		} else if left {
			break
		}
	}
	return a, nil
}

func main() {
	tuning := flag.String("tuning", "tuning.yaml", "tuning preset file, .yaml or .toml")
	flag.Parse()

	presets, err := prefabs.LoadTuningPresets(*tuning)
	if err != nil {
		log.Fatal(err)
	}

	g := &arcGame{}
	for el := presets.Front(); el != nil; el = el.Next() {
		full, err := simulate(el.Value, maxTicks)
		if err != nil {
			log.Fatalf("preset %q: %v", el.Key, err)
		}
		hop, err := simulate(el.Value, 1)
		if err != nil {
			log.Fatalf("preset %q: %v", el.Key, err)
		}
		g.presets = append(g.presets, preset{name: el.Key, full: full, hop: hop})
	}

	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("Jump Arcs")
	ebiten.SetTPS(common.TPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
