package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagFrames    int
	flagAutopilot bool
	flagFlapEvery int
	flagRealtime  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session and print the outcome",
	Long: `Run a session at a fixed frame clock without a terminal.

Input comes from the autopilot, from a flap every N frames, or from
nobody at all (the flyer just sinks).

Examples:
  flappy sim --autopilot --frames 7200
  flappy sim --flap-every 20 --seed 3
  flappy sim --autopilot --realtime
  flappy sim --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum frames to simulate")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer toward the next gap")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 0, "Flap every N frames (0 = never)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames to wall time and feed measured deltas")
}

// driver produces the input for the next frame.
type driver func(g *flappy.Game, frame int) core.InputFrame

func newDriver(autopilot bool, flapEvery int) driver {
	switch {
	case autopilot:
		pilot := flappy.Autopilot{Margin: 4}
		return func(g *flappy.Game, _ int) core.InputFrame {
			return pilot.Input(g)
		}
	case flapEvery > 0:
		return func(_ *flappy.Game, frame int) core.InputFrame {
			in := core.NewInputFrame()
			if frame%flapEvery == 0 {
				in.Push(core.ActionFlap)
			}
			return in
		}
	}
	return func(*flappy.Game, int) core.InputFrame {
		return core.NewInputFrame()
	}
}

// newSimClock picks the frame time source. The fixed clock gives
// frame-exact, instant runs; the wall clock sleeps to the frame rate.
func newSimClock(realtime bool, fps int) core.Clock {
	if realtime {
		return core.NewWallClock(fps)
	}
	return core.NewFixedClock(fps)
}

// simulate runs up to maxFrames steps and returns the final state.
func simulate(g *flappy.Game, clock core.Clock, maxFrames int, next driver) core.GameState {
	for i := 0; i < maxFrames; i++ {
		res := g.Step(clock.Tick(), next(g, i))
		if res.State.GameOver {
			break
		}
	}
	return g.State()
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagAutopilot && flagFlapEvery > 0 {
		return fmt.Errorf("--autopilot and --flap-every are mutually exclusive")
	}
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := flappy.New(cfg, seed, flappy.WithLogger(sessionLogger(logger)))
	if err != nil {
		return err
	}

	state := simulate(game, newSimClock(flagRealtime, cfg.FPS), flagFrames, newDriver(flagAutopilot, flagFlapEvery))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed: %d\n", seed)
	printOutcome(out, cfg, state)
	return nil
}

func printOutcome(w io.Writer, cfg config.FlappyConfig, state core.GameState) {
	seconds := float64(state.Frame) * cfg.FrameMs() / 1000
	if state.GameOver {
		fmt.Fprintf(w, "Game Over! Score: %d\n", state.Score)
		fmt.Fprintf(w, "Reason: %s after %d frames (%.1fs)\n", state.EndReason, state.Frame, seconds)
		return
	}
	fmt.Fprintf(w, "Score: %d\n", state.Score)
	fmt.Fprintf(w, "Still flying after %d frames (%.1fs)\n", state.Frame, seconds)
}
