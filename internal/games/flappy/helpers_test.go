package flappy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

func testConfig(mutate func(*config.FlappyConfig)) config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return cfg
}

func testSprites(cfg config.FlappyConfig) sprite.Set {
	return sprite.DefaultSet(cfg.Flyer.Width, cfg.Flyer.Height, cfg.Gates.SegmentWidth, cfg.Gates.SegmentHeight)
}

func newTestGame(t *testing.T, mutate func(*config.FlappyConfig)) *Game {
	t.Helper()
	g, err := New(testConfig(mutate), 1)
	require.NoError(t, err)
	return g
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Push(a)
	}
	return in
}

// still keeps the flyer where it starts: no sinking and no initial climb.
func still(c *config.FlappyConfig) {
	c.Physics.SinkSpeed = 0
	c.Physics.InitialClimbMs = 0
}
