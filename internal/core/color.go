package core

import "strconv"

// Color is a foreground color for a screen cell.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)

// Roles used by the flappy renderer.
const (
	ColorPipe      = ColorGreen
	ColorPipeCap   = ColorBrightGreen
	ColorBird      = ColorBrightYellow
	ColorCrashed   = ColorBrightRed
	ColorScore     = ColorBrightWhite
	ColorBest      = ColorGray
	ColorCountdown = ColorBrightYellow
)

var ansiCodes = [...]int{
	ColorRed:          1,
	ColorGreen:        2,
	ColorYellow:       3,
	ColorBrightRed:    9,
	ColorBrightGreen:  10,
	ColorBrightYellow: 11,
	ColorBrightWhite:  15,
	ColorGray:         245,
}

// ANSI returns the 256-color code for c, or "" for ColorDefault and
// unknown values.
func (c Color) ANSI() string {
	if c == ColorDefault || int(c) >= len(ansiCodes) {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}
