// Package constants provides shared configuration values used across the colorcat application.
package constants

import "time"

// Input source defaults
const (
	// DefaultCommand is run when stdin is an interactive terminal
	DefaultCommand = "adb logcat -v threadtime"

	// DefaultStopTimeout is how long a source command gets to exit after SIGTERM
	DefaultStopTimeout = 3 * time.Second
)

// ReaderBufferSize is the read buffer for the input stream. Longer lines
// are still read whole.
const ReaderBufferSize = 64 * 1024 // 64KB

// Terminal defaults, used when the output is not a terminal
const (
	DefaultTerminalWidth  = 80
	DefaultTerminalHeight = 24
)

// Output layout
const (
	// SeverityWidth is the width of the centered severity badge
	SeverityWidth = 3

	// TagWidth is the width the tag is right-aligned (and left-truncated) to
	TagWidth = 25

	// ProcessWidth is the width reserved for "TIME PID/TID"
	ProcessWidth = 21

	// IDWidth is the minimum width of the pid and tid fields
	IDWidth = 3

	// HeaderSize is the indent of wrapped message continuation lines
	HeaderSize = SeverityWidth + 1 + TagWidth + 1 + ProcessWidth + 1
)

// Highlighting
const (
	// AlertTag marks the process whose lines are always shown in the alert color
	AlertTag = "BTLD"

	// NoAlertPID is the alert pid before any AlertTag line is seen
	NoAlertPID = "0"

	// BannerPrefix precedes the styled keyword on the startup banner
	BannerPrefix = "Highlight Keyword: "
)
