package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sim"
	"golang.design/x/clipboard"
)

const statusTicks = 2 * common.TPS

type Game struct {
	sim      *sim.Sim
	renderer *render.Renderer
	pauseUI  *ebitenui.UI
	watcher  *prefabs.Watcher

	paused    bool
	clipboard bool

	status      string
	statusTimer int
}

func NewGame(cfg sim.Config, debug, watch bool) (*Game, error) {
	s, err := sim.New(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{sim: s, renderer: render.NewRenderer()}
	g.renderer.Debug = debug
	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	if watch {
		if info, err := os.Stat(prefabs.Dir); err == nil && info.IsDir() {
			w, err := prefabs.NewWatcher(prefabs.Dir)
			if err != nil {
				log.Printf("game: watch %s: %v", prefabs.Dir, err)
			} else {
				g.watcher = w
			}
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.Debug = !g.renderer.Debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyTuning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.nextPreset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.respawn()
	}

	g.pollWatcher()
	if g.statusTimer > 0 {
		g.statusTimer--
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	g.sim.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.World, g.sim.Physics.Space())

	hud := fmt.Sprintf("Preset: %s    TPS: %.0f    [P] next preset  [R] respawn  [C] copy tuning  [F3] debug", g.sim.Preset(), ebiten.ActualTPS())
	if g.statusTimer > 0 {
		hud += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	g.statusTimer = statusTicks
	log.Print("game: " + g.status)
}

func (g *Game) nextPreset() {
	name, err := g.sim.NextPreset()
	if err != nil {
		g.setStatus("preset: %v", err)
		return
	}
	g.setStatus("preset %q", name)
}

func (g *Game) respawn() {
	if err := g.sim.Respawn(); err != nil {
		g.setStatus("respawn: %v", err)
	}
}

// copyTuning puts the active preset on the clipboard as YAML, ready to
// paste into a preset file.
func (g *Game) copyTuning() {
	if !g.clipboard {
		g.setStatus("clipboard unavailable")
		return
	}
	data, err := prefabs.EncodeTuningYAML(g.sim.Preset(), g.sim.Tuning())
	if err != nil {
		g.setStatus("encode tuning: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.setStatus("copied preset %q", g.sim.Preset())
}

// pollWatcher reloads presets when the active preset file changes. A bad
// edit is reported and the running presets stay in place.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Base(name) != filepath.Base(g.sim.TuningFile()) {
				continue
			}
			if err := g.sim.ReloadPresets(); err != nil {
				log.Printf("game: reload %s: %v", name, err)
				g.setStatus("reload %s: %v", filepath.Base(name), err)
				continue
			}
			g.setStatus("reloaded %s", filepath.Base(name))
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watcher: %v", err)
			}
		default:
			return
		}
	}
}
