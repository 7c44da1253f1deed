package domain

import (
	"fmt"
	"strings"
)

// Color is one of the eight basic ANSI colors. The value is the SGR
// ordinal, so Red renders as 31 in the foreground and 41 in the background.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// String returns the lower-case color name
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// Valid returns true for the eight known colors
func (c Color) Valid() bool {
	return c >= Black && c <= White
}

// ParseColor converts a color name (case-insensitive) to a Color
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", name)
}

// UnmarshalText lets colors be used directly in YAML config
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
