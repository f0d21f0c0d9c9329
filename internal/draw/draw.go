// Package draw renders a logical playfield onto a terminal with
// half-block characters.
package draw

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a palette index. The zero value is an unset pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGreen
	ColorCyan
	ColorMagenta
	ColorRed
	ColorYellow
)

// ColorReset restores the terminal's default attributes.
const ColorReset = "\033[0m"

var ansiColors = [...]string{
	ColorNone:    ColorReset,
	ColorWhite:   "\033[97m",
	ColorGreen:   "\033[92m",
	ColorCyan:    "\033[96m",
	ColorMagenta: "\033[95m",
	ColorRed:     "\033[91m",
	ColorYellow:  "\033[93m",
}

// ANSI returns the escape sequence selecting c as foreground color.
func (c Color) ANSI() string {
	if int(c) < len(ansiColors) {
		return ansiColors[c]
	}
	return ColorReset
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
