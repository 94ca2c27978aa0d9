package core

// Color is a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorNeonBlue
	ColorNeonTeal
	ColorNeonCyan
	ColorNeonPink
	ColorNeonPurple
	ColorNeonRed
	ColorNeonOrange
	ColorNeonYellow
	ColorNeonGreen
)
