// Package terminal reports the size of the controlling terminal.
package terminal

import (
	"github.com/charliek/colorcat/internal/constants"
	"golang.org/x/term"
)

// Dimensions is a terminal size in cells
type Dimensions struct {
	Width  int
	Height int
}

// Default is used when fd is not a terminal
var Default = Dimensions{
	Width:  constants.DefaultTerminalWidth,
	Height: constants.DefaultTerminalHeight,
}

// Size returns the size of the terminal on fd, or Default
func Size(fd uintptr) Dimensions {
	w, h, err := term.GetSize(int(fd))
	if err != nil || w <= 0 || h <= 0 {
		return Default
	}
	return Dimensions{Width: w, Height: h}
}

// IsTerminal reports whether fd is an interactive terminal
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}
