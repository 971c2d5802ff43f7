package replay

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/motion"
	"github.com/milk9111/platformer/sim"
	"github.com/zeebo/xxh3"
)

var ErrNoTicks = errors.New("replay: tick count must be positive")

type Config struct {
	Script string
	Level  string
	Tuning string
	Preset string
	Ticks  int
	// Trace receives one line per tick when set.
	Trace io.Writer
}

// Frame is the player's state after one tick.
type Frame struct {
	Tick     uint64
	X, Y     float64
	Snapshot motion.Snapshot
	Digest   uint64
}

// Result summarises a run. Digest covers every frame, so two runs agree on
// it only if they agree on the whole trajectory.
type Result struct {
	Ticks  int
	Digest uint64
	Final  Frame
}

// Run loads the script and world named by cfg and drives it headless.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Ticks <= 0 {
		return Result{}, ErrNoTicks
	}
	script, err := LoadScript(cfg.Script, common.FixedDelta)
	if err != nil {
		return Result{}, err
	}
	s, err := sim.New(sim.Config{
		Level:  cfg.Level,
		Tuning: cfg.Tuning,
		Preset: cfg.Preset,
		Input:  script,
	})
	if err != nil {
		return Result{}, err
	}
	return Drive(ctx, s, script, cfg.Ticks, cfg.Trace)
}

// Drive steps s for ticks ticks, hashing the player's state after each.
func Drive(ctx context.Context, s *sim.Sim, script *Script, ticks int, trace io.Writer) (Result, error) {
	hasher := xxh3.New()
	var (
		buf   []byte
		frame Frame
	)
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		s.Step()
		if script != nil && script.Err() != nil {
			return Result{}, script.Err()
		}

		state := s.State()
		pos := s.PlayerTransform()
		buf = state.AppendBinary(buf[:0])
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(pos.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(pos.Y))
		if _, err := hasher.Write(buf); err != nil {
			return Result{}, err
		}

		frame = Frame{
			Tick:     uint64(i),
			X:        pos.X,
			Y:        pos.Y,
			Snapshot: state.Snapshot(),
			Digest:   xxh3.Hash(buf),
		}
		if trace != nil {
			if err := writeFrame(trace, frame); err != nil {
				return Result{}, fmt.Errorf("replay: trace: %w", err)
			}
		}
	}
	return Result{Ticks: ticks, Digest: hasher.Sum64(), Final: frame}, nil
}

func writeFrame(w io.Writer, f Frame) error {
	_, err := fmt.Fprintf(w, "%5d %-12s x=%8.4f y=%8.4f vx=%8.4f vy=%8.4f grounded=%t %016x\n",
		f.Tick, f.Snapshot.State, f.X, f.Y, f.Snapshot.Velocity.X, f.Snapshot.Velocity.Y, f.Snapshot.Grounded, f.Digest)
	return err
}
