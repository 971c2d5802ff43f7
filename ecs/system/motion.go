package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

const (
	poundShakeDuration  = 0.2
	poundShakeIntensity = 0.15
)

// MotionSystem probes for ground under every controlled body and steps its
// motion controller once per tick.
type MotionSystem struct {
	sensor motion.GroundSensor
	dt     float64
}

func NewMotionSystem(sensor motion.GroundSensor, dt float64) *MotionSystem {
	return &MotionSystem{sensor: sensor, dt: dt}
}

func (ms *MotionSystem) Update(w *ecs.World) {
	if w == nil || ms.sensor == nil {
		return
	}

	ecs.ForEach3(w, component.MotionComponent.Kind(), component.TransformComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, m *component.Motion, t *component.Transform, in *component.Input) {
		if m.Controller == nil || m.State == nil {
			return
		}

		pos := cp.Vector{X: t.X, Y: t.Y}
		grounded := ms.sensor.Probe(pos)
		if probe, ok := ecs.Get(w, e, component.GroundProbeComponent.Kind()); ok {
			probe.Box = motion.ProbeBox(pos, m.Controller.Tuning())
			probe.Hit = grounded
		}

		wasPounding := m.State.IsGroundPounding()
		m.Controller.Step(m.State, in.ToMotion(), grounded, ms.dt)

		if wasPounding && !m.State.IsGroundPounding() && m.State.IsGrounded() {
			if err := ecs.Add(w, e, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{
				Duration:  poundShakeDuration,
				Intensity: poundShakeIntensity,
			}); err != nil {
				log.Printf("motion: shake request: %v", err)
			}
		}
	})
}

// SetTuning re-derives every controller from t. Invalid tunings are
// rejected before any controller changes.
func (ms *MotionSystem) SetTuning(w *ecs.World, preset string, t motion.Tuning) error {
	if _, err := t.Derive(); err != nil {
		return err
	}

	var err error
	ecs.ForEach(w, component.MotionComponent.Kind(), func(_ ecs.Entity, m *component.Motion) {
		if m.Controller == nil {
			return
		}
		if e := m.Controller.SetTuning(t); e != nil {
			err = e
			return
		}
		m.Preset = preset
	})
	if err != nil {
		return err
	}

	if c, ok := ms.sensor.(interface{ Configure(motion.Tuning) }); ok {
		c.Configure(t)
	}
	return nil
}
