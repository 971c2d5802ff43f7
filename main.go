package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/sim"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	levelName := flag.String("level", "", "level file (default levels/test_level.json)")
	tuning := flag.String("tuning", "", "tuning preset file, .yaml or .toml (default prefabs/tuning.yaml)")
	preset := flag.String("preset", "", "tuning preset name")
	watch := flag.Bool("watch", true, "reload tuning presets when files under prefabs/ change")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(sim.Config{
		Level:  *levelName,
		Tuning: *tuning,
		Preset: *preset,
		Input:  keyboardInput{},
	}, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
