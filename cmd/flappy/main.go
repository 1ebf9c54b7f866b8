// flappy is a terminal Flappy Bird with a headless simulation mode.
//
// Usage:
//
//	flappy play             - Play in the terminal
//	flappy sim              - Run a session without a terminal and print the outcome
//	flappy config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default search: ~/.tui-flappy, ./configs, embedded)
//	--fps <rate>        - Override the configured frame rate
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird for the terminal. Keep the flyer between the pipes:
every flap starts a short climb, otherwise it sinks.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless session and print the outcome
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy sim --frames 3600 --autopilot
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the root logger. Without --log-file it writes to
// fallback. The returned close func releases the log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closeFn, nil
}

// sessionLogger tags a logger with a fresh session ID.
func sessionLogger(logger *log.Logger) *log.Logger {
	return logger.With("session", uuid.NewString())
}

// loadConfig resolves the game config and applies flag overrides.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	logger.Info("config loaded", "source", source, "fps", cfg.FPS)
	return cfg, nil
}
