package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// IndentWrap hard-wraps text to width-indent cells and indents every
// continuation line by indent spaces. Escape sequences take no width.
// Text is returned unchanged when width leaves no room after the indent.
func IndentWrap(text string, indent, width int) string {
	area := width - indent
	if width <= 0 || area <= 0 || ansi.StringWidth(text) <= area {
		return text
	}
	wrapped := ansi.Hardwrap(text, area, true)
	return strings.ReplaceAll(wrapped, "\n", "\n"+strings.Repeat(" ", indent))
}
