package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Autopilot is a scripted input source for headless runs. It aims the
// flyer's centre at the gap of the next gate it has not cleared yet, or at
// the middle of the play area when no gate is ahead.
type Autopilot struct {
	// Margin is how far below the target the centre may drift before a flap.
	Margin float64
}

// Target returns the y the autopilot steers toward.
func (a Autopilot) Target(g *Game) float64 {
	f := g.Flyer()
	for _, gate := range g.Gates() {
		if gate.TrailingEdge() >= f.X() {
			return float64(gate.GapTop()+gate.GapBottom()) / 2
		}
	}
	return float64(g.Config().Window.Height) / 2
}

// Decide reports whether to flap this frame. It never interrupts a climb.
func (a Autopilot) Decide(g *Game) bool {
	f := g.Flyer()
	if f.Climbing() {
		return false
	}
	centre := f.Y() + float64(f.Height())/2
	return centre > a.Target(g)+a.Margin
}

// Input builds the frame input for the current state.
func (a Autopilot) Input(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if a.Decide(g) {
		in.Push(core.ActionFlap)
	}
	return in
}
