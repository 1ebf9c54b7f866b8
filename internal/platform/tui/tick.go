// Package tui provides the Bubble Tea integration for flappy sessions.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall time of a frame boundary.
type TickMsg time.Time

// tickCmd schedules the next frame boundary one interval from now.
// The model measures the real gap between boundaries, so a late tick
// becomes a longer frame rather than a skipped one.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
