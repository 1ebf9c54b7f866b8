package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// climbEpsilon absorbs floating-point residue when the climb countdown is
// decremented by non-representable frame durations (1000/60).
const climbEpsilon = 1e-9

// Flyer is the player-controlled body. Its x never changes; obstacles move.
type Flyer struct {
	x, y             float64
	climbRemainingMs float64

	climbDurationMs float64
	climbSpeed      float64
	sinkSpeed       float64

	sprite *sprite.Sprite
}

// NewFlyer places a flyer at its start position with the initial climb seeded.
func NewFlyer(cfg config.FlappyConfig, spr *sprite.Sprite) *Flyer {
	return &Flyer{
		x:                float64(cfg.Flyer.X),
		y:                cfg.StartY(),
		climbRemainingMs: cfg.Physics.InitialClimbMs,
		climbDurationMs:  cfg.Physics.ClimbDurationMs,
		climbSpeed:       cfg.Physics.ClimbSpeed,
		sinkSpeed:        cfg.Physics.SinkSpeed,
		sprite:           spr,
	}
}

// Advance moves the flyer by one frame of dtMs milliseconds.
//
// While climbing, the per-frame rise is scaled by 1-cos(frac*pi) where frac
// is the share of the climb already spent: it starts from rest and builds
// smoothly until the climb runs out. Otherwise the flyer sinks at a
// constant rate.
func (f *Flyer) Advance(dtMs float64) {
	if f.climbRemainingMs > 0 {
		frac := 1 - f.climbRemainingMs/f.climbDurationMs
		f.y -= f.climbSpeed * dtMs * (1 - math.Cos(frac*math.Pi))
		f.climbRemainingMs -= dtMs
		if f.climbRemainingMs <= climbEpsilon {
			f.climbRemainingMs = 0
		}
		return
	}
	f.y += f.sinkSpeed * dtMs
}

// Flap restarts the climb from the beginning, even mid-climb.
func (f *Flyer) Flap() {
	f.climbRemainingMs = f.climbDurationMs
}

// Climbing reports whether a climb is in progress.
func (f *Flyer) Climbing() bool {
	return f.climbRemainingMs > 0
}

// ClimbRemainingMs returns the milliseconds left in the current climb.
func (f *Flyer) ClimbRemainingMs() float64 {
	return f.climbRemainingMs
}

// X returns the fixed horizontal position.
func (f *Flyer) X() float64 {
	return f.x
}

// Y returns the vertical position of the top edge.
func (f *Flyer) Y() float64 {
	return f.y
}

// Width returns the sprite width.
func (f *Flyer) Width() int {
	return f.sprite.Width()
}

// Height returns the sprite height.
func (f *Flyer) Height() int {
	return f.sprite.Height()
}

// BoundingBox returns (x, y, width, height).
func (f *Flyer) BoundingBox() core.RectF {
	return core.NewRectF(f.x, f.y, float64(f.sprite.Width()), float64(f.sprite.Height()))
}

// CollisionMask returns the sprite's occupancy mask.
func (f *Flyer) CollisionMask() *sprite.Mask {
	return f.sprite.Mask
}
