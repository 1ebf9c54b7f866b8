package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Collider is anything that can take part in pixel-accurate collision.
type Collider interface {
	BoundingBox() core.RectF
	CollisionMask() *sprite.Mask
}

// Collide reports whether any solid pixels of a and b overlap.
// Positions are floored onto the pixel grid; the bounding-box test only
// rejects early.
func Collide(a, b Collider) bool {
	ra := a.BoundingBox().Snap()
	rb := b.BoundingBox().Snap()
	if !ra.Intersects(rb) {
		return false
	}
	return a.CollisionMask().Overlaps(b.CollisionMask(), rb.X-ra.X, rb.Y-ra.Y)
}
