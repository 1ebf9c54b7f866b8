package tui

import "github.com/vovakirdan/tui-flappy/internal/core"

// Game is the interface the TUI drives once per tick.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh session with the given seed.
	Reset(seed int64)

	// Step advances one frame of dtMs milliseconds with the frame's input.
	Step(dtMs float64, in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}
