package core

// Color is a cell color used for both foreground and background.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for screen cells.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// Style pairs a foreground and background color.
type Style struct {
	Fg Color
	Bg Color
}
