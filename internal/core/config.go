package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// EndReason tells why a session reached its terminal state.
type EndReason int

const (
	EndNone      EndReason = iota // Session still live
	EndCollision                  // Flyer overlapped a gate
	EndCeiling                    // Flyer reached the top edge
	EndFloor                      // Flyer reached the bottom edge
	EndQuit                       // Player asked to quit
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndCollision:
		return "collision"
	case EndCeiling:
		return "ceiling"
	case EndFloor:
		return "floor"
	case EndQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int       // Current score
	GameOver  bool      // Whether the game has ended
	Paused    bool      // Whether the game is paused
	Frame     int       // Simulated frames so far
	EndReason EndReason // Why the game ended; EndNone while running
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Scored is the number of gates passed during this tick.
	Scored int
}
