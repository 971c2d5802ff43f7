package entity

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/motion"
)

// LoadLevelToWorld adds the level bounds and one static, drawable box per
// merged run of tiles. Non-physics layers become sprites only.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("level: world and level are required")
	}

	bounds := lvl.Bounds()
	boundsEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		MinX:  bounds.L,
		MinY:  bounds.B,
		MaxX:  bounds.R,
		MaxY:  bounds.T,
		KillY: lvl.KillY(),
	}); err != nil {
		return err
	}

	solids := 0
	for layerIdx, layer := range lvl.Layers {
		physics := lvl.Physics(layerIdx)
		col := parseHexColor(lvl.LayerColor(layerIdx))

		for _, r := range levels.MergeTiles(layer, lvl.Width, lvl.Height) {
			bb := r.BB(lvl.Height)
			center := bb.Center()
			width, height := bb.R-bb.L, bb.T-bb.B

			e := ecs.CreateEntity(w)
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: center.X, Y: center.Y}); err != nil {
				return err
			}
			if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Width: width, Height: height, Color: col}); err != nil {
				return err
			}
			if !physics {
				continue
			}
			if err := ecs.Add(w, e, component.SolidTagComponent.Kind(), &component.SolidTag{}); err != nil {
				return err
			}
			if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Width:    width,
				Height:   height,
				Static:   true,
				Category: motion.GroundCategory,
			}); err != nil {
				return err
			}
			solids++
		}
	}

	log.Printf("level: %dx%d with %d solid boxes", lvl.Width, lvl.Height, solids)
	return nil
}

// parseHexColor converts "#rrggbb" to an opaque colour, or grey if the
// string is malformed.
func parseHexColor(hex string) color.RGBA {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
