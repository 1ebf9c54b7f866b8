package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	FlyerChar  = '●'
	PipeChar   = '█'
	PipeCap    = '▓'
	GroundChar = '═'
)

// Render draws the current game state to the screen.
// The pixel play area is scaled onto every row but the last, which holds
// the ground line; each cell shows whatever covers the pixel at its centre.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	cols, rows := dst.Width(), dst.Height()-1
	if cols <= 0 || rows <= 0 {
		return
	}

	dst.DrawHLine(0, rows, cols, GroundChar, core.ColorGray)

	sx := float64(g.cfg.Window.Width) / float64(cols)
	sy := float64(g.cfg.Window.Height) / float64(rows)

	fr := g.flyer.BoundingBox().Snap()
	fmask := g.flyer.CollisionMask()
	fcolor := core.ColorBrightYellow
	if g.endReason == core.EndCollision {
		fcolor = core.ColorRed
	}

	for cy := 0; cy < rows; cy++ {
		py := int((float64(cy) + 0.5) * sy)
		for cx := 0; cx < cols; cx++ {
			px := int((float64(cx) + 0.5) * sx)

			if fmask.Get(px-fr.X, py-fr.Y) {
				dst.SetColored(cx, cy, FlyerChar, fcolor)
				continue
			}
			for _, gate := range g.gates.Gates() {
				lx := px - int(math.Floor(gate.X()))
				if !gate.CollisionMask().Get(lx, py) {
					continue
				}
				if kind, _ := gate.KindAt(py); kind == SegmentCap {
					dst.SetColored(cx, cy, PipeCap, core.ColorBrightGreen)
				} else {
					dst.SetColored(cx, cy, PipeChar, core.ColorGreen)
				}
				break
			}
		}
	}

	// Draw HUD
	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawTextColored(2, 0, scoreText, core.ColorBrightWhite)

	switch g.phase {
	case PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseEnded:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d (%s)  |  R restart  Q quit", g.score, g.endReason))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := core.Clamp((w-boxW)/2, 0, core.Max(w-1, 0))
	boxY := core.Clamp((h-boxH)/2, 0, core.Max(h-1, 0))

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
