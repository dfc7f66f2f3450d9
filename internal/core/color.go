package core

// Color is a foreground color for a screen cell.
// The platform layer maps it to ANSI 256-color codes.
type Color uint8

// Colors used by the playfield.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorRed
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightWhite
)
