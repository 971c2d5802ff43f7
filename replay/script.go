package replay

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// Script is a compiled tengo input script. Each evaluation sees the globals
// tick (int) and t (seconds, float) and must leave horizontal, vertical
// and death set; missing outputs read as zero.
type Script struct {
	name     string
	compiled *tengo.Compiled
	dt       float64
	err      error
}

func Compile(name string, src []byte, dt float64) (*Script, error) {
	s := tengo.NewScript(src)
	if err := s.Add("tick", 0); err != nil {
		return nil, err
	}
	if err := s.Add("t", 0.0); err != nil {
		return nil, err
	}
	s.SetMaxAllocs(10000)

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("replay: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled, dt: dt}, nil
}

// LoadScript compiles a script from prefabs/scripts.
func LoadScript(name string, dt float64) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("replay: load %s: %w", name, err)
	}
	return Compile(name, src, dt)
}

func (s *Script) Name() string {
	return s.name
}

// Eval runs the script for one tick.
func (s *Script) Eval(ctx context.Context, tick uint64) (component.Input, error) {
	if err := s.compiled.Set("tick", int64(tick)); err != nil {
		return component.Input{}, err
	}
	if err := s.compiled.Set("t", float64(tick)*s.dt); err != nil {
		return component.Input{}, err
	}
	if err := s.compiled.RunContext(ctx); err != nil {
		return component.Input{}, fmt.Errorf("replay: %s tick %d: %w", s.name, tick, err)
	}

	return component.Input{
		MoveX: s.compiled.Get("horizontal").Float(),
		MoveY: s.compiled.Get("vertical").Float(),
		Death: s.compiled.Get("death").Bool(),
	}, nil
}

// Sample adapts the script to system.InputSource. The first evaluation
// error is kept for Err and later ticks read as no input.
func (s *Script) Sample(tick uint64) component.Input {
	if s.err != nil {
		return component.Input{}
	}
	in, err := s.Eval(context.Background(), tick)
	if err != nil {
		s.err = err
		return component.Input{}
	}
	return in
}

func (s *Script) Err() error {
	return s.err
}
