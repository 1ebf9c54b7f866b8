// Package sprite provides occupancy masks for pixel-accurate collision and
// the built-in procedural sprites the flappy simulation uses.
package sprite

import (
	"image"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// AlphaThreshold is the opacity above which a pixel counts as solid.
const AlphaThreshold = 127

// Mask is a per-pixel solid/transparent map of a sprite's silhouette.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// NewMask creates an empty (fully transparent) mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// FromImage derives a mask from the alpha channel of img. A pixel is solid
// when its 8-bit alpha is above AlphaThreshold.
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.bits[y*m.width+x] = true
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.width
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.height
}

// Bounds returns the mask extent at the origin.
func (m *Mask) Bounds() core.Rect {
	return core.NewRect(0, 0, m.width, m.height)
}

// Get reports whether the pixel is solid. Out-of-range pixels are transparent.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Set marks a pixel solid or transparent. Out-of-range pixels are ignored.
func (m *Mask) Set(x, y int, solid bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.bits[y*m.width+x] = solid
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Blit ORs src into m with src's top-left at (x, y), clipping at the edges.
func (m *Mask) Blit(src *Mask, x, y int) {
	area := m.Bounds().Intersection(core.NewRect(x, y, src.width, src.height))
	for py := area.Y; py < area.Bottom(); py++ {
		for px := area.X; px < area.Right(); px++ {
			if src.bits[(py-y)*src.width+(px-x)] {
				m.bits[py*m.width+px] = true
			}
		}
	}
}

// Overlap returns the first solid pixel shared by m and other, where other's
// top-left sits at (dx, dy) in m's coordinates. The point is in m's
// coordinates.
func (m *Mask) Overlap(other *Mask, dx, dy int) (image.Point, bool) {
	area := m.Bounds().Intersection(core.NewRect(dx, dy, other.width, other.height))
	for py := area.Y; py < area.Bottom(); py++ {
		for px := area.X; px < area.Right(); px++ {
			if m.bits[py*m.width+px] && other.bits[(py-dy)*other.width+(px-dx)] {
				return image.Pt(px, py), true
			}
		}
	}
	return image.Point{}, false
}

// Overlaps reports whether any solid pixels coincide; see Overlap.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	_, hit := m.Overlap(other, dx, dy)
	return hit
}
