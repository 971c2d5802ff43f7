package component

// Transform is a body's centre in world units, y up.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
