package sprite

import (
	"image"
	"image/color"
)

// Colours of the built-in sprites.
var (
	FlyerColor   = color.NRGBA{R: 250, G: 210, B: 40, A: 255}
	BeakColor    = color.NRGBA{R: 240, G: 120, B: 30, A: 255}
	GateColor    = color.NRGBA{R: 90, G: 190, B: 60, A: 255}
	GateCapColor = color.NRGBA{R: 60, G: 150, B: 40, A: 255}
)

// Sprite pairs an image with its precomputed occupancy mask.
type Sprite struct {
	Name  string
	Image image.Image
	Mask  *Mask
}

// New builds a sprite and derives its mask from the image's alpha channel.
func New(name string, img image.Image) *Sprite {
	return &Sprite{
		Name:  name,
		Image: img,
		Mask:  FromImage(img),
	}
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.Mask.Width()
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.Mask.Height()
}

// Set holds the sprites a session needs.
type Set struct {
	Flyer    *Sprite
	GateBody *Sprite
	GateCap  *Sprite
}

// DefaultSet generates the built-in sprites at the given extents.
func DefaultSet(flyerW, flyerH, segmentW, segmentH int) Set {
	return Set{
		Flyer:    New("flyer", FlyerImage(flyerW, flyerH)),
		GateBody: New("gate-body", GateBodyImage(segmentW, segmentH)),
		GateCap:  New("gate-cap", GateCapImage(segmentW, segmentH)),
	}
}

// FlyerImage draws an elliptical body filling the box with a beak on the
// right edge. Corners stay transparent.
func FlyerImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rx, ry := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx := (float64(x) + 0.5 - rx) / rx
			ny := (float64(y) + 0.5 - ry) / ry
			if nx*nx+ny*ny > 1 {
				continue
			}
			c := FlyerColor
			if nx > 0.6 && ny > -0.15 && ny < 0.25 {
				c = BeakColor
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// GateBodyImage draws one pipe body segment: a solid column inset by a
// sixteenth of the width on each side so the end-cap overhangs it.
func GateBodyImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	inset := w / 16
	for y := 0; y < h; y++ {
		for x := inset; x < w-inset; x++ {
			img.SetNRGBA(x, y, GateColor)
		}
	}
	return img
}

// GateCapImage draws the full-width end-cap segment.
func GateCapImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, GateCapColor)
		}
	}
	return img
}
