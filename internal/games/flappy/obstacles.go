package flappy

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Stream owns the live gates in creation order. Gates share one speed and
// one spawn x, so creation order is also right-to-left order and only the
// head can ever leave the screen first.
type Stream struct {
	gates          []*Gate
	rng            *rand.Rand
	cfg            config.FlappyConfig
	sprites        sprite.Set
	framesPerSpawn int
	logger         *log.Logger
}

// NewStream creates an empty stream with the given RNG seed.
func NewStream(cfg config.FlappyConfig, sprites sprite.Set, seed int64, logger *log.Logger) *Stream {
	s := &Stream{
		gates:          make([]*Gate, 0, 8),
		cfg:            cfg,
		sprites:        sprites,
		framesPerSpawn: cfg.FramesPerSpawn(),
		logger:         logger,
	}
	s.Reset(seed)
	return s
}

// Reset clears all gates and reseeds the RNG.
func (s *Stream) Reset(seed int64) {
	clear(s.gates)
	s.gates = s.gates[:0]
	s.rng = rand.New(rand.NewSource(seed))
}

// MaybeSpawn appends a new gate when frame is a multiple of the spawn
// cadence and the session is not paused. Returns the new gate or nil.
func (s *Stream) MaybeSpawn(frame int, paused bool) *Gate {
	if paused || frame%s.framesPerSpawn != 0 {
		return nil
	}
	g := GenerateGate(s.rng, s.cfg, s.sprites)
	s.gates = append(s.gates, g)
	s.logger.Debug("gate spawned", "frame", frame, "bottom", g.BottomSegments(), "top", g.TopSegments(), "gap", g.GapHeight())
	return g
}

// AdvanceAll scrolls every live gate.
func (s *Stream) AdvanceAll(dtMs float64) {
	for _, g := range s.gates {
		g.Advance(dtMs)
	}
}

// EvictOffscreen drops gates from the head while they are not visible.
// Returns how many were removed.
func (s *Stream) EvictOffscreen() int {
	evicted := 0
	for len(s.gates) > 0 && !s.gates[0].Visible() {
		s.gates[0] = nil
		s.gates = s.gates[1:]
		evicted++
	}
	if evicted > 0 {
		s.logger.Debug("gates evicted", "count", evicted, "live", len(s.gates))
	}
	return evicted
}

// UpdateScore marks every unscored gate whose trailing edge is strictly
// left of flyerX and returns how many were newly scored.
func (s *Stream) UpdateScore(flyerX float64) int {
	scored := 0
	for _, g := range s.gates {
		if !g.scoreCounted && g.TrailingEdge() < flyerX {
			g.scoreCounted = true
			scored++
		}
	}
	return scored
}

// Collides reports whether c overlaps any live gate.
func (s *Stream) Collides(c Collider) bool {
	for _, g := range s.gates {
		if g.TestCollision(c) {
			return true
		}
	}
	return false
}

// Gates returns the live gates, oldest first.
func (s *Stream) Gates() []*Gate {
	return s.gates
}

// Len returns the number of live gates.
func (s *Stream) Len() int {
	return len(s.gates)
}
