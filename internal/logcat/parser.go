// Package logcat parses lines in the "adb logcat -v threadtime" format:
//
//	11-06 15:49:43.757   640   640 D dalvikvm: GC freed 9163 objects
package logcat

import (
	"fmt"
	"regexp"

	"github.com/charliek/colorcat/internal/domain"
)

var threadtime = regexp.MustCompile(`^(\d\d-\d\d) (\d\d:\d\d:\d\d\.\d\d\d)\s+(\d+)\s+(\d+) ([A-Z]) ([^:]*)([: +])(.*)$`)

// Parser matches threadtime lines. It holds no state.
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits line into a Record. ok is false when the line is not in
// threadtime format and should be passed through unchanged. A line that
// matches but carries a severity outside V, D, I, W, E returns an error
// wrapping domain.ErrUnknownSeverity.
func (p *Parser) Parse(line string) (rec domain.Record, ok bool, err error) {
	m := threadtime.FindStringSubmatch(line)
	if m == nil {
		return domain.Record{}, false, nil
	}

	rec = domain.Record{
		Date:     m[1],
		Time:     m[2],
		PID:      m[3],
		TID:      m[4],
		Severity: domain.Severity(m[5]),
		Tag:      m[6],
		Sep:      m[7],
		Message:  m[8],
	}
	if !rec.Severity.Valid() {
		return rec, true, fmt.Errorf("%w: %q", domain.ErrUnknownSeverity, m[5])
	}
	return rec, true, nil
}
