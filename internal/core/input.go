package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, Enter, mouse click - start a climb
	ActionPause          // P, Pause - pause/unpause the session
	ActionQuit           // Q, Escape - end the session
	ActionRestart        // R key - start a new session after game over
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input for one simulation tick.
// Discrete events keep their arrival order because the session consumes
// them in sequence (a quit ahead of a pause wins, a pause ahead of a flap
// swallows the flap).
type InputFrame struct {
	// Events are the discrete actions received since the previous tick.
	Events []Action

	// FlapHeld is a continuous input sampled once per tick (e.g. a held
	// button). It is OR'd into the flap request.
	FlapHeld bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Events: make([]Action, 0, 4),
	}
}

// Push appends an action in arrival order. ActionNone is ignored.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Events = append(f.Events, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e == a {
			return true
		}
	}
	return false
}

// Empty reports whether no event was received and nothing is held.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0 && !f.FlapHeld
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
	f.FlapHeld = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{
		Events:   make([]Action, len(f.Events)),
		FlapHeld: f.FlapHeld,
	}
	copy(clone.Events, f.Events)
	return clone
}
