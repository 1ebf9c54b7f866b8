// Package flappy implements a Flappy Bird-style game.
// The player controls a flyer that must pass through the gaps between
// scrolling pipe gates; collision is tested on sprite silhouettes.
package flappy

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Phase is the session state machine position.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Game implements one flappy session: the flyer, the gate stream and the
// score, advanced once per frame by Step.
type Game struct {
	cfg     config.FlappyConfig
	sprites sprite.Set
	logger  *log.Logger

	flyer     *Flyer
	gates     *Stream
	score     int
	frame     int // Frames simulated; frozen while paused
	phase     Phase
	endReason core.EndReason
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithSprites replaces the built-in sprites. Their extents must match the
// configured flyer and segment sizes.
func WithSprites(set sprite.Set) Option {
	return func(g *Game) {
		g.sprites = set
	}
}

// New validates cfg and starts a session seeded with seed.
func New(cfg config.FlappyConfig, seed int64, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.sprites.Flyer == nil {
		g.sprites = sprite.DefaultSet(cfg.Flyer.Width, cfg.Flyer.Height, cfg.Gates.SegmentWidth, cfg.Gates.SegmentHeight)
	}
	if err := checkSprites(cfg, g.sprites); err != nil {
		return nil, err
	}

	g.gates = NewStream(cfg, g.sprites, seed, g.logger)
	g.Reset(seed)
	return g, nil
}

func checkSprites(cfg config.FlappyConfig, set sprite.Set) error {
	if set.Flyer == nil || set.GateBody == nil || set.GateCap == nil {
		return fmt.Errorf("flappy: sprite set is incomplete")
	}
	check := func(s *sprite.Sprite, w, h int) error {
		if s.Width() != w || s.Height() != h {
			return fmt.Errorf("flappy: %s sprite is %dx%d, configured %dx%d", s.Name, s.Width(), s.Height(), w, h)
		}
		return nil
	}
	if err := check(set.Flyer, cfg.Flyer.Width, cfg.Flyer.Height); err != nil {
		return err
	}
	if err := check(set.GateBody, cfg.Gates.SegmentWidth, cfg.Gates.SegmentHeight); err != nil {
		return err
	}
	return check(set.GateCap, cfg.Gates.SegmentWidth, cfg.Gates.SegmentHeight)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts a fresh session with a new seed.
func (g *Game) Reset(seed int64) {
	g.flyer = NewFlyer(g.cfg, g.sprites.Flyer)
	g.gates.Reset(seed)
	g.score = 0
	g.frame = 0
	g.phase = PhaseRunning
	g.endReason = core.EndNone

	g.logger.Info("session started", "seed", seed, "y", g.flyer.Y())
}

// Step advances the session by one frame of dtMs milliseconds.
//
// Order within a frame: spawn, input (quit ends at once, pause skips the
// rest), flap, termination check against the previous frame's position,
// evict and scroll gates, move the flyer, score.
func (g *Game) Step(dtMs float64, in core.InputFrame) core.StepResult {
	if g.phase == PhaseEnded {
		return core.StepResult{State: g.State()}
	}

	g.gates.MaybeSpawn(g.frame, g.phase == PhasePaused)

	flap := in.FlapHeld
	for _, a := range in.Events {
		switch a {
		case core.ActionQuit:
			g.end(core.EndQuit)
			return core.StepResult{State: g.State()}
		case core.ActionPause:
			g.togglePause()
		case core.ActionFlap:
			flap = true
		}
	}

	if g.phase == PhasePaused {
		return core.StepResult{State: g.State()}
	}

	if flap {
		g.flyer.Flap()
	}

	if reason := g.checkTermination(); reason != core.EndNone {
		g.end(reason)
		return core.StepResult{State: g.State()}
	}

	g.gates.EvictOffscreen()
	g.gates.AdvanceAll(dtMs)
	g.flyer.Advance(dtMs)

	scored := g.gates.UpdateScore(g.flyer.X())
	if scored > 0 {
		g.score += scored
		g.logger.Debug("gate passed", "score", g.score, "frame", g.frame)
	}

	g.frame++

	return core.StepResult{State: g.State(), Scored: scored}
}

// checkTermination tests the flyer against the gates and the play-area
// edges. It runs before this frame's flyer update.
func (g *Game) checkTermination() core.EndReason {
	switch {
	case g.gates.Collides(g.flyer):
		return core.EndCollision
	case g.flyer.Y() <= 0:
		return core.EndCeiling
	case g.flyer.Y() >= float64(g.cfg.Window.Height-g.flyer.Height()):
		return core.EndFloor
	}
	return core.EndNone
}

func (g *Game) togglePause() {
	if g.phase == PhasePaused {
		g.phase = PhaseRunning
		g.logger.Info("session resumed", "frame", g.frame)
		return
	}
	g.phase = PhasePaused
	g.logger.Info("session paused", "frame", g.frame)
}

func (g *Game) end(reason core.EndReason) {
	g.phase = PhaseEnded
	g.endReason = reason
	g.logger.Info("session ended", "reason", reason, "score", g.score, "frames", g.frame)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		GameOver:  g.phase == PhaseEnded,
		Paused:    g.phase == PhasePaused,
		Frame:     g.frame,
		EndReason: g.endReason,
	}
}

// Phase returns the state machine position.
func (g *Game) Phase() Phase {
	return g.phase
}

// Flyer returns the session's flyer.
func (g *Game) Flyer() *Flyer {
	return g.flyer
}

// Gates returns the live gates, oldest first.
func (g *Game) Gates() []*Gate {
	return g.gates.Gates()
}

// Config returns the session configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
