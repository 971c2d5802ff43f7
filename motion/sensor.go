package motion

import "github.com/jakecoffman/cp"

// PlayerCategory is the collision category of controlled bodies. It is kept
// out of GroundCategory so a probe never finds the body it hangs from.
const PlayerCategory uint = 1 << 1

// GroundSensor answers whether solid ground lies in the probe region below
// pos.
type GroundSensor interface {
	Probe(pos cp.Vector) bool
}

// GroundSensorFunc adapts a plain function to GroundSensor.
type GroundSensorFunc func(pos cp.Vector) bool

func (f GroundSensorFunc) Probe(pos cp.Vector) bool { return f(pos) }

// ProbeBox returns the probe region for a body centred at pos.
func ProbeBox(pos cp.Vector, t Tuning) cp.BB {
	cx := pos.X
	cy := pos.Y - t.ProbeOffset
	hw := t.ProbeWidth / 2
	hh := t.ProbeHeight / 2
	return cp.BB{L: cx - hw, B: cy - hh, R: cx + hw, T: cy + hh}
}

// SpaceSensor probes a chipmunk space for shapes whose category intersects
// the tuning's ground mask.
type SpaceSensor struct {
	space  *cp.Space
	tuning Tuning
}

func NewSpaceSensor(space *cp.Space, t Tuning) *SpaceSensor {
	return &SpaceSensor{space: space, tuning: t}
}

// Configure swaps the probe geometry and mask, typically after a tuning
// reload.
func (s *SpaceSensor) Configure(t Tuning) {
	s.tuning = t
}

func (s *SpaceSensor) Probe(pos cp.Vector) bool {
	if s == nil || s.space == nil {
		return false
	}

	filter := cp.ShapeFilter{Group: 0, Categories: ^uint(0), Mask: s.tuning.GroundMask}
	hit := false
	s.space.BBQuery(ProbeBox(pos, s.tuning), filter, func(shape *cp.Shape, data interface{}) {
		if !shape.Sensor() {
			hit = true
		}
	}, nil)
	return hit
}
