package sim

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/motion"
	"github.com/milk9111/platformer/prefabs"
)

var ErrUnknownPreset = errors.New("sim: unknown tuning preset")

type Config struct {
	// Level names a level file; empty loads levels.DefaultLevel.
	Level string
	// Tuning names a preset file; empty loads prefabs.DefaultTuningFile.
	Tuning string
	// Preset selects a preset by name; empty uses the player prefab's
	// preset, then the first preset in the file.
	Preset string
	Input  system.InputSource
	// DT defaults to common.FixedDelta.
	DT float64
}

// Sim is one headless world: level geometry, the player, the camera and
// the per-tick systems. The game and the replay runner both drive it.
type Sim struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Input     *system.InputSystem
	Physics   *system.PhysicsSystem
	Motion    *system.MotionSystem
	Level     *levels.Level
	Presets   *prefabs.Presets

	Player ecs.Entity
	Camera ecs.Entity

	preset     string
	tuningFile string
	dt         float64
}

func New(cfg Config) (*Sim, error) {
	dt := cfg.DT
	if dt <= 0 {
		dt = common.FixedDelta
	}

	lvl, err := levels.Load(cfg.Level)
	if err != nil {
		return nil, err
	}
	presets, err := prefabs.LoadTuningPresets(cfg.Tuning)
	if err != nil {
		return nil, err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}

	preset := cfg.Preset
	if preset == "" {
		preset = playerSpec.Preset
	}
	if _, ok := presets.Get(preset); !ok {
		if cfg.Preset != "" {
			return nil, fmt.Errorf("%w %q", ErrUnknownPreset, cfg.Preset)
		}
		preset = presets.Front().Key
	}
	tuning, _ := presets.Get(preset)

	w := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(w, lvl); err != nil {
		return nil, err
	}
	spawn := lvl.Spawn()
	player, err := entity.NewPlayerAt(w, playerSpec, preset, tuning, spawn)
	if err != nil {
		return nil, err
	}
	camera, err := entity.NewCameraAt(w, cameraSpec, spawn.X, spawn.Y)
	if err != nil {
		return nil, err
	}

	physics := system.NewPhysicsSystem(dt)
	physics.Sync(w)
	input := system.NewInputSystem(cfg.Input)
	motionSystem := system.NewMotionSystem(motion.NewSpaceSensor(physics.Space(), tuning), dt)

	s := &Sim{
		World:   w,
		Input:   input,
		Physics: physics,
		Motion:  motionSystem,
		Level:   lvl,
		Presets: presets,
		Player:  player,
		Camera:  camera,

		preset:     preset,
		tuningFile: cfg.Tuning,
		dt:         dt,
	}
	s.Scheduler = ecs.NewScheduler(
		input,
		motionSystem,
		physics,
		system.NewRespawnSystem(physics),
		system.NewAnimationSystem(),
		system.NewCameraSystem(dt, cameraSpec.ShakeSeed),
	)
	return s, nil
}

// Step advances the world by one fixed tick.
func (s *Sim) Step() {
	s.Scheduler.Update(s.World)
}

func (s *Sim) Tick() uint64 {
	return s.Input.Tick()
}

func (s *Sim) DT() float64 {
	return s.dt
}

func (s *Sim) Preset() string {
	return s.preset
}

// PlayerMotion returns the player's motion component.
func (s *Sim) PlayerMotion() *component.Motion {
	m, _ := ecs.Get(s.World, s.Player, component.MotionComponent.Kind())
	return m
}

func (s *Sim) State() *motion.State {
	if m := s.PlayerMotion(); m != nil {
		return m.State
	}
	return nil
}

func (s *Sim) Tuning() motion.Tuning {
	if m := s.PlayerMotion(); m != nil && m.Controller != nil {
		return m.Controller.Tuning()
	}
	return motion.DefaultTuning()
}

func (s *Sim) PlayerTransform() component.Transform {
	if t, ok := ecs.Get(s.World, s.Player, component.TransformComponent.Kind()); ok {
		return *t
	}
	return component.Transform{}
}

// ApplyPreset switches every controller to the named preset. The running
// state keeps its velocity; only derived constants change.
func (s *Sim) ApplyPreset(name string) error {
	t, ok := s.Presets.Get(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	if err := s.Motion.SetTuning(s.World, name, t); err != nil {
		return err
	}
	s.preset = name
	log.Printf("sim: preset %q", name)
	return nil
}

// NextPreset cycles to the preset after the current one in file order.
func (s *Sim) NextPreset() (string, error) {
	el := s.Presets.GetElement(s.preset)
	if el == nil || el.Next() == nil {
		el = s.Presets.Front()
	} else {
		el = el.Next()
	}
	if el == nil {
		return "", prefabs.ErrNoPresets
	}
	return el.Key, s.ApplyPreset(el.Key)
}

// ReloadPresets re-reads the preset file and reapplies the current preset,
// falling back to the first one if it was removed. On error the previous
// presets stay active.
func (s *Sim) ReloadPresets() error {
	presets, err := prefabs.LoadTuningPresets(s.tuningFile)
	if err != nil {
		return err
	}
	old := s.Presets
	s.Presets = presets

	name := s.preset
	if _, ok := presets.Get(name); !ok {
		name = presets.Front().Key
	}
	if err := s.ApplyPreset(name); err != nil {
		s.Presets = old
		return err
	}
	return nil
}

// TuningFile is the preset file the sim loaded.
func (s *Sim) TuningFile() string {
	if s.tuningFile == "" {
		return prefabs.DefaultTuningFile
	}
	return s.tuningFile
}

// Respawn asks the respawn system to reset the player next tick.
func (s *Sim) Respawn() error {
	if ecs.Has(s.World, s.Player, component.RespawnRequestComponent.Kind()) {
		return nil
	}
	return ecs.Add(s.World, s.Player, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{})
}
