package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var (
	flagFrames int
	flagScript string
)

var simCmd = &cobra.Command{
	Use:   "sim [level]",
	Short: "Run a level headless with scripted input",
	Long: `Run the simulation without a display and log every event.

Frames are spaced 1000/--fps ms apart and do not wait for the clock, so a
run is deterministic. The script lists held controls as
control:from-to spans in milliseconds, separated by commas. Controls are
left, right and up.

Examples:
  platformer sim
  platformer sim 2 --frames 1200
  platformer sim 1 --script right:0-3000,up:400-900,up:1500-1800`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simCmd.Flags().StringVar(&flagScript, "script", "right:0-10000", "Held controls as control:from-to spans in ms")
}

// span holds one control between two timestamps, end exclusive.
type span struct {
	control  string
	from, to float64
}

// script is a parsed input script.
type script []span

// parseScript parses "right:0-2000,up:500-900".
func parseScript(s string) (script, error) {
	var out script
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		control, rng, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("script span %q: missing ':'", part)
		}
		switch control {
		case "left", "right", "up":
		default:
			return nil, fmt.Errorf("script span %q: unknown control %q", part, control)
		}
		fromS, toS, ok := strings.Cut(rng, "-")
		if !ok {
			return nil, fmt.Errorf("script span %q: missing '-'", part)
		}
		from, err := strconv.ParseFloat(fromS, 64)
		if err != nil {
			return nil, fmt.Errorf("script span %q: %w", part, err)
		}
		to, err := strconv.ParseFloat(toS, 64)
		if err != nil {
			return nil, fmt.Errorf("script span %q: %w", part, err)
		}
		if to < from {
			return nil, fmt.Errorf("script span %q: ends before it starts", part)
		}
		out = append(out, span{control: control, from: from, to: to})
	}
	return out, nil
}

// At returns the controls held at ts.
func (s script) At(ts float64) engine.Input {
	var in engine.Input
	for _, sp := range s {
		if ts < sp.from || ts >= sp.to {
			continue
		}
		switch sp.control {
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		case "up":
			in.Up = true
		}
	}
	return in
}

// simResult summarizes a headless run.
type simResult struct {
	Frames  int
	Coins   int
	Struck  int
	Stomped int
	Deaths  int
	Cleared bool
}

// simulate drives lv through the loop with scripted input until the frames
// run out or the hero reaches the end of the level.
func simulate(ctx context.Context, lv *level.Level, t engine.Tuning, sc script, frames int, interval float64, logger *log.Logger) (simResult, error) {
	var res simResult
	c := engine.NewContext(lv, t)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	n := 0
	var loop engine.Loop
	loop.Start(ctx, engine.LoopOptions{
		Context: c,
		Frames:  &engine.FixedFrames{Interval: interval, Limit: frames},
		Input: func() engine.Input {
			n++
			return sc.At(float64(n) * interval)
		},
		OnEvents: func(ev engine.Events) {
			res.Frames++
			ts := c.Timestamp
			for _, p := range ev.Coins {
				logger.Info("coin", "ts", ts, "col", p.Col, "row", p.Row)
			}
			for _, p := range ev.Struck {
				logger.Info("block", "ts", ts, "col", p.Col, "row", p.Row)
			}
			for _, idx := range ev.Stomped {
				logger.Info("stomp", "ts", ts, "gumba", idx)
			}
			res.Coins += len(ev.Coins)
			res.Struck += len(ev.Struck)
			res.Stomped += len(ev.Stomped)
			if ev.Death != engine.DeathNone {
				res.Deaths++
				logger.Warn("death", "ts", ts, "cause", ev.Death)
			}
			if engine.AtLevelEnd(c) {
				res.Cleared = true
				logger.Info("level cleared", "ts", ts)
				cancel()
			}
		},
	})
	err := loop.Wait()

	logger.Info("done",
		"frames", res.Frames,
		"x", c.Hero.Pos.X,
		"y", c.Hero.Pos.Y,
		"coins", res.Coins+res.Struck,
		"stomps", res.Stomped,
		"deaths", res.Deaths,
	)
	return res, err
}

func runSim(_ *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, "sim")
	applyGameFlags(logger)
	cfg := loadConfig(logger)

	sc, err := parseScript(flagScript)
	if err != nil {
		exitErr(err)
	}
	id, err := levelArg(args)
	if err != nil {
		exitErr(err)
	}

	loader := levelLoader()
	loader.Logger = logger
	lv, err := pickLevel(loader, id)
	if err != nil {
		exitErr(err)
	}

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	logger.Info("simulating", "level", lv.ID, "title", lv.Title, "frames", flagFrames, "fps", fps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := simulate(ctx, lv, platformer.TuningFromConfig(cfg), sc, flagFrames, 1000/float64(fps), logger)
	if err != nil {
		exitErr(err)
	}
	if !res.Cleared {
		logger.Info("level not cleared")
	}
}

// pickLevel loads the level with the given id, or the first level when id is 0.
func pickLevel(loader *levels.Loader, id int) (*level.Level, error) {
	if id > 0 {
		return loader.LoadByID(id)
	}
	all, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	return all[0], nil
}
