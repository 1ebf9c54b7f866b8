package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault      Color = iota
	ColorRed                // Flyer after a crash
	ColorGreen              // Gate bodies
	ColorBrightGreen        // Gate end-caps
	ColorBrightYellow       // Flyer
	ColorBrightWhite        // HUD text
	ColorGray               // Ground line
)
