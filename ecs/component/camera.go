package component

// Camera follows the player entity. X and Y are the view centre in world
// units.
type Camera struct {
	X          float64
	Y          float64
	OffsetX    float64
	OffsetY    float64
	Smoothing  float64
	HalfWidth  float64
	HalfHeight float64

	ShakeX         float64
	ShakeY         float64
	ShakeRemaining float64
	ShakeIntensity float64
	ShakeSeed      int64
	Snapped        bool
}

var CameraComponent = NewComponent[Camera]()
