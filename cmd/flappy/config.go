package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the same way play and sim do and print it
as YAML, followed by its derived values. Exits non-zero if it is invalid.

Examples:
  flappy config
  flappy config --config ./my-flappy.yaml > flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	fmt.Fprint(out, string(data))

	if err := cfg.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(out, "# frame: %.3fms, spawn every %d frames, %d body slots per gate\n",
		cfg.FrameMs(), cfg.FramesPerSpawn(), cfg.BodySlots())
	return nil
}
