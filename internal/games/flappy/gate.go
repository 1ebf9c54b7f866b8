package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// SegmentKind distinguishes pipe body pieces from the end-cap facing the gap.
type SegmentKind int

const (
	SegmentBody SegmentKind = iota
	SegmentCap
)

// Segment is one sprite-sized piece of a gate, positioned relative to the
// gate's left edge (y is absolute since gates span the full height).
type Segment struct {
	Rect core.Rect
	Kind SegmentKind
	Top  bool // Part of the stack hanging from the ceiling
}

// Gate is one obstacle pair: a stack rising from the floor and a stack
// hanging from the ceiling, separated by a passable gap.
type Gate struct {
	x            float64
	scrollSpeed  float64
	width        int
	segmentH     int
	playW, playH int

	// Segment counts including the end-cap of each stack.
	bottomCount int
	topCount    int

	scoreCounted bool

	segments []Segment
	mask     *sprite.Mask
}

// GenerateGate draws the body split uniformly from [1, BodySlots] and lays
// out a new gate at the spawn position.
func GenerateGate(rng *rand.Rand, cfg config.FlappyConfig, sprites sprite.Set) *Gate {
	slots := cfg.BodySlots()
	bottom := 1 + rng.Intn(slots)
	return NewGate(cfg, sprites, cfg.SpawnX(), bottom, slots-bottom)
}

// NewGate lays out a gate at x with the given body segment counts.
// The bottom stack grows up from the floor and the top stack down from the
// ceiling; each ends in a cap next to the gap. The occupancy mask is the
// combined silhouette, so the gap is transparent.
func NewGate(cfg config.FlappyConfig, sprites sprite.Set, x float64, bottomBody, topBody int) *Gate {
	w, h := cfg.Gates.SegmentWidth, cfg.Gates.SegmentHeight
	playH := cfg.Window.Height

	g := &Gate{
		x:           x,
		scrollSpeed: cfg.Physics.ScrollSpeed,
		width:       w,
		segmentH:    h,
		playW:       cfg.Window.Width,
		playH:       playH,
		segments:    make([]Segment, 0, bottomBody+topBody+2),
		mask:        sprite.NewMask(w, playH),
	}

	place := func(y int, kind SegmentKind, top bool) {
		src := sprites.GateBody
		if kind == SegmentCap {
			src = sprites.GateCap
		}
		g.segments = append(g.segments, Segment{Rect: core.NewRect(0, y, w, h), Kind: kind, Top: top})
		g.mask.Blit(src.Mask, 0, y)
	}

	for i := 1; i <= bottomBody; i++ {
		place(playH-i*h, SegmentBody, false)
	}
	place(playH-bottomBody*h-h, SegmentCap, false)

	for i := 0; i < topBody; i++ {
		place(i*h, SegmentBody, true)
	}
	place(topBody*h, SegmentCap, true)

	// Counts from here on include the caps.
	g.bottomCount = bottomBody + 1
	g.topCount = topBody + 1

	return g
}

// Advance scrolls the gate left.
func (g *Gate) Advance(dtMs float64) {
	g.x -= g.scrollSpeed * dtMs
}

// Visible reports whether any part of the gate is on screen.
func (g *Gate) Visible() bool {
	return -float64(g.width) < g.x && g.x < float64(g.playW)
}

// X returns the left edge.
func (g *Gate) X() float64 {
	return g.x
}

// TrailingEdge returns the right edge, the one the flyer passes last.
func (g *Gate) TrailingEdge() float64 {
	return g.x + float64(g.width)
}

// Width returns the segment width.
func (g *Gate) Width() int {
	return g.width
}

// BottomSegments returns the bottom stack size including its cap.
func (g *Gate) BottomSegments() int {
	return g.bottomCount
}

// TopSegments returns the top stack size including its cap.
func (g *Gate) TopSegments() int {
	return g.topCount
}

// GapTop returns the y of the top stack's bottom edge.
func (g *Gate) GapTop() int {
	return g.topCount * g.segmentH
}

// GapBottom returns the y of the bottom stack's top edge.
func (g *Gate) GapBottom() int {
	return g.playH - g.bottomCount*g.segmentH
}

// GapHeight returns the vertical opening between the stacks.
func (g *Gate) GapHeight() int {
	return g.GapBottom() - g.GapTop()
}

// Segments returns the layout of both stacks, bottom stack first.
func (g *Gate) Segments() []Segment {
	return g.segments
}

// KindAt returns the kind of segment covering row y, if any.
func (g *Gate) KindAt(y int) (SegmentKind, bool) {
	switch {
	case y < 0 || y >= g.playH:
		return SegmentBody, false
	case y < g.GapTop():
		if y >= g.GapTop()-g.segmentH {
			return SegmentCap, true
		}
		return SegmentBody, true
	case y >= g.GapBottom():
		if y < g.GapBottom()+g.segmentH {
			return SegmentCap, true
		}
		return SegmentBody, true
	}
	return SegmentBody, false
}

// ScoreCounted reports whether the gate has already been scored.
func (g *Gate) ScoreCounted() bool {
	return g.scoreCounted
}

// BoundingBox returns the gate's full-height box.
func (g *Gate) BoundingBox() core.RectF {
	return core.NewRectF(g.x, 0, float64(g.width), float64(g.playH))
}

// CollisionMask returns the combined silhouette of both stacks.
func (g *Gate) CollisionMask() *sprite.Mask {
	return g.mask
}

// TestCollision reports whether the flyer overlaps a solid pixel of the gate.
func (g *Gate) TestCollision(c Collider) bool {
	return Collide(g, c)
}
