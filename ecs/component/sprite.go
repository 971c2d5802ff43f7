package component

import "image/color"

// Sprite is the flat-coloured rectangle a character or tile is drawn as.
type Sprite struct {
	Width  float64
	Height float64
	FlipX  bool
	Color  color.RGBA
}

var SpriteComponent = NewComponent[Sprite]()
