package component

// CameraShakeRequest asks the camera system to apply a short shake effect.
// Duration is in seconds, Intensity in world units.
type CameraShakeRequest struct {
	Duration  float64
	Intensity float64
}

var CameraShakeRequestComponent = NewComponent[CameraShakeRequest]()
