// Package termstyle renders foreground, background and weight combinations
// into SGR escape sequences.
package termstyle

import (
	"strconv"
	"strings"

	"github.com/charliek/colorcat/internal/domain"
)

// Reset clears every attribute
const Reset = "\033[0m"

// Style describes one escape sequence. The zero value has no colors and
// normal weight. Styles are values; every method returns a modified copy.
type Style struct {
	fg, bg       domain.Color
	hasFg, hasBg bool
	bright       bool
	bold         bool
	dim          bool
}

// New returns an empty style
func New() Style {
	return Style{}
}

// Foreground sets the text color
func (s Style) Foreground(c domain.Color) Style {
	s.fg, s.hasFg = c, true
	return s
}

// Background sets the background color
func (s Style) Background(c domain.Color) Style {
	s.bg, s.hasBg = c, true
	return s
}

// Bright selects the high-intensity background range (10x)
func (s Style) Bright() Style {
	s.bright = true
	return s
}

// Bold sets bold weight. Bold wins over Dim.
func (s Style) Bold() Style {
	s.bold = true
	return s
}

// Dim sets faint weight
func (s Style) Dim() Style {
	s.dim = true
	return s
}

// Sequence returns the escape sequence for the style
func (s Style) Sequence() string {
	codes := make([]string, 0, 3)
	if s.hasFg {
		codes = append(codes, "3"+strconv.Itoa(int(s.fg)))
	}
	if s.hasBg {
		if s.bright {
			codes = append(codes, "10"+strconv.Itoa(int(s.bg)))
		} else {
			codes = append(codes, "4"+strconv.Itoa(int(s.bg)))
		}
	}
	switch {
	case s.bold:
		codes = append(codes, "1")
	case s.dim:
		codes = append(codes, "2")
	default:
		codes = append(codes, "22")
	}
	return "\033[" + strings.Join(codes, ";") + "m"
}

// Render wraps text in the style followed by Reset
func (s Style) Render(text string) string {
	return s.Sequence() + text + Reset
}

// String implements fmt.Stringer
func (s Style) String() string {
	return s.Sequence()
}
