package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/milk9111/platformer/replay"
)

func main() {
	script := flag.String("script", "run_jump", "input script in prefabs/scripts (basename, .tengo optional)")
	levelName := flag.String("level", "", "level file (default levels/test_level.json)")
	tuning := flag.String("tuning", "", "tuning preset file, .yaml or .toml")
	preset := flag.String("preset", "", "tuning preset name")
	ticks := flag.Int("ticks", 600, "number of fixed ticks to simulate")
	trace := flag.Bool("trace", false, "print one line per tick")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var out io.Writer
	if *trace {
		out = os.Stdout
	}

	res, err := replay.Run(ctx, replay.Config{
		Script: *script,
		Level:  *levelName,
		Tuning: *tuning,
		Preset: *preset,
		Ticks:  *ticks,
		Trace:  out,
	})
	if err != nil {
		log.Fatal(err)
	}

	f := res.Final
	fmt.Printf("ticks=%d digest=%016x state=%s x=%.4f y=%.4f\n", res.Ticks, res.Digest, f.Snapshot.State, f.X, f.Y)
}
