package core

// Color is a terminal foreground color for a screen cell. Hosts map each
// value to a concrete ANSI 256 code.
type Color uint8

// Screen colors. The first seven after ColorDefault are the piece colors;
// the grays are frame and empty-cell colors.
const (
	ColorDefault Color = iota
	ColorBrightCyan
	ColorBrightYellow
	ColorMagenta
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
	ColorGray
	ColorDarkGray
)
