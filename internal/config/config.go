// Package config provides YAML-based game configuration loading and
// validation for the flappy simulation.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FlappyConfig contains all configuration for a flappy session.
// Dimensions are in play-area pixels, speeds in pixels per millisecond.
type FlappyConfig struct {
	Window  WindowConfig  `yaml:"window"`
	FPS     int           `yaml:"fps"`
	Physics PhysicsConfig `yaml:"physics"`
	Flyer   FlyerConfig   `yaml:"flyer"`
	Gates   GateConfig    `yaml:"gates"`
}

// WindowConfig defines the play area.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines motion parameters.
type PhysicsConfig struct {
	SinkSpeed       float64 `yaml:"sink_speed"`        // Fall rate when not climbing
	ClimbSpeed      float64 `yaml:"climb_speed"`       // Peak climb rate scale
	ClimbDurationMs float64 `yaml:"climb_duration_ms"` // Length of one flap
	InitialClimbMs  float64 `yaml:"initial_climb_ms"`  // Climb left at session start
	ScrollSpeed     float64 `yaml:"scroll_speed"`      // Gate scroll rate
}

// FlyerConfig defines the player-controlled body.
type FlyerConfig struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GateConfig defines obstacle segments and spawn cadence.
type GateConfig struct {
	SegmentWidth    int     `yaml:"segment_width"`
	SegmentHeight   int     `yaml:"segment_height"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
}

// FrameMs returns the nominal frame duration in milliseconds.
func (c FlappyConfig) FrameMs() float64 {
	return 1000.0 / float64(c.FPS)
}

// FramesPerSpawn returns the spawn cadence in frames.
func (c FlappyConfig) FramesPerSpawn() int {
	return int(math.Round(float64(c.FPS) * c.Gates.SpawnIntervalMs / 1000.0))
}

// BodySlots returns how many body segments a gate splits between its two
// stacks, leaving room for both end-caps and a gap of at least three
// flyer heights.
func (c FlappyConfig) BodySlots() int {
	free := c.Window.Height - 3*c.Flyer.Height - 3*c.Gates.SegmentHeight
	if free < 0 || c.Gates.SegmentHeight <= 0 {
		return 0
	}
	return free / c.Gates.SegmentHeight
}

// SpawnX returns the x coordinate new gates start at.
func (c FlappyConfig) SpawnX() float64 {
	return float64(c.Window.Width - 1)
}

// StartY returns the flyer's initial y, vertically centred.
func (c FlappyConfig) StartY() float64 {
	return float64(c.Window.Height)/2 - float64(c.Flyer.Height)/2
}

// Validate checks every rule and reports all violations at once.
func (c FlappyConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		fail("window must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.FPS <= 0 {
		fail("fps must be positive, got %d", c.FPS)
	}
	if c.Physics.ClimbDurationMs <= 0 {
		fail("physics.climb_duration_ms must be positive, got %g", c.Physics.ClimbDurationMs)
	}
	if c.Physics.SinkSpeed < 0 || c.Physics.ClimbSpeed < 0 || c.Physics.ScrollSpeed < 0 {
		fail("physics speeds must not be negative")
	}
	if c.Physics.InitialClimbMs < 0 {
		fail("physics.initial_climb_ms must not be negative, got %g", c.Physics.InitialClimbMs)
	} else if c.Physics.ClimbDurationMs > 0 && c.Physics.InitialClimbMs > c.Physics.ClimbDurationMs {
		fail("physics.initial_climb_ms %g exceeds climb_duration_ms %g", c.Physics.InitialClimbMs, c.Physics.ClimbDurationMs)
	}
	if c.Flyer.Width <= 0 || c.Flyer.Height <= 0 {
		fail("flyer size must be positive, got %dx%d", c.Flyer.Width, c.Flyer.Height)
	}
	if c.Gates.SegmentWidth <= 0 || c.Gates.SegmentHeight <= 0 {
		fail("gate segment size must be positive, got %dx%d", c.Gates.SegmentWidth, c.Gates.SegmentHeight)
	}
	if c.Gates.SpawnIntervalMs <= 0 {
		fail("gates.spawn_interval_ms must be positive, got %g", c.Gates.SpawnIntervalMs)
	} else if c.FPS > 0 && c.FramesPerSpawn() < 1 {
		fail("gates.spawn_interval_ms %g is shorter than one frame", c.Gates.SpawnIntervalMs)
	}
	if c.Window.Width > 0 && (c.Flyer.X < 0 || c.Flyer.X >= c.Window.Width) {
		fail("flyer.x %d is outside the window", c.Flyer.X)
	}
	if c.Window.Height > 0 && c.Flyer.Height >= c.Window.Height {
		fail("flyer.height %d does not fit the window height %d", c.Flyer.Height, c.Window.Height)
	}
	if c.Window.Height > 0 && c.Flyer.Height > 0 && c.Gates.SegmentHeight > 0 && c.BodySlots() < 1 {
		fail("window height %d leaves no room for gate bodies (need at least %d)",
			c.Window.Height, 3*c.Flyer.Height+4*c.Gates.SegmentHeight)
	}

	return errors.Join(errs...)
}
