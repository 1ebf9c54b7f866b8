package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Window: WindowConfig{
			Width:  568,
			Height: 512,
		},
		FPS: 60,
		Physics: PhysicsConfig{
			SinkSpeed:       0.14,
			ClimbSpeed:      0.2,
			ClimbDurationMs: 300,
			InitialClimbMs:  2,
			ScrollSpeed:     0.15,
		},
		Flyer: FlyerConfig{
			X:      50,
			Width:  32,
			Height: 32,
		},
		Gates: GateConfig{
			SegmentWidth:    80,
			SegmentHeight:   32,
			SpawnIntervalMs: 3000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
