// Package render turns parsed logcat records into colored terminal lines.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/charliek/colorcat/internal/constants"
	"github.com/charliek/colorcat/internal/domain"
	"github.com/charliek/colorcat/internal/logcat"
	"github.com/charliek/colorcat/internal/palette"
	"github.com/charliek/colorcat/internal/rules"
	"github.com/charliek/colorcat/internal/termstyle"
)

// AlertColor is used for every line from the alert pid
const AlertColor = domain.Red

var (
	keywordStyle = termstyle.New().Foreground(domain.White).Background(domain.Red).Bold()
	errorStyle   = termstyle.New().Foreground(domain.Red).Bold()
)

// badges are the severity columns, each followed by a space
var badges = map[domain.Severity]string{
	domain.SeverityVerbose: badge(domain.SeverityVerbose, domain.White, domain.Black),
	domain.SeverityDebug:   badge(domain.SeverityDebug, domain.Black, domain.Blue),
	domain.SeverityInfo:    badge(domain.SeverityInfo, domain.Black, domain.Green),
	domain.SeverityWarn:    badge(domain.SeverityWarn, domain.Black, domain.Yellow),
	domain.SeverityError:   badge(domain.SeverityError, domain.Black, domain.Red),
}

func badge(s domain.Severity, fg, bg domain.Color) string {
	style := termstyle.New().Foreground(fg).Background(bg)
	return style.Render(center(s.String(), constants.SeverityWidth)) + " "
}

// Options control the optional parts of rendering. The zero value renders
// exactly the classic layout.
type Options struct {
	// Keyword is emphasized wherever it appears in a message
	Keyword string
	// TagColors colors the tag column per tag instead of per pid
	TagColors bool
	// Rules rewrite the message before keyword emphasis
	Rules *rules.Set
	// Width is the terminal width messages are wrapped to; 0 disables wrapping
	Width int
}

// Renderer formats lines. It owns the alert pid and uses the allocator for
// everything else; like the allocator it is not safe for concurrent use.
type Renderer struct {
	parser *logcat.Parser
	colors *palette.Allocator
	opts   Options

	alertPID     string
	highlight    string
	highlightErr string
}

// New creates a Renderer drawing colors from colors
func New(colors *palette.Allocator, opts Options) *Renderer {
	r := &Renderer{
		parser:   logcat.NewParser(),
		colors:   colors,
		opts:     opts,
		alertPID: constants.NoAlertPID,
	}
	if opts.Keyword != "" {
		r.highlight = keywordStyle.Render(opts.Keyword)
		r.highlightErr = r.highlight + errorStyle.Sequence()
	}
	return r
}

// Banner returns the startup line announcing the keyword, or "" without one
func (r *Renderer) Banner() string {
	if r.opts.Keyword == "" {
		return ""
	}
	return constants.BannerPrefix + r.highlight
}

// AlertPID returns the pid currently shown in the alert color
func (r *Renderer) AlertPID() string {
	return r.alertPID
}

// Line renders one raw input line. Lines that are not in threadtime format
// come back unchanged. A line with an unknown severity returns an error
// wrapping domain.ErrUnknownSeverity and no output.
func (r *Renderer) Line(raw string) (string, error) {
	rec, ok, err := r.parser.Parse(raw)
	if !ok {
		return raw, nil
	}
	if err != nil {
		return "", err
	}
	return r.Render(rec), nil
}

// Render formats a parsed record
func (r *Renderer) Render(rec domain.Record) string {
	tag := strings.TrimSpace(rec.Tag)
	if tag == constants.AlertTag {
		r.alertPID = rec.PID
	}

	var color domain.Color
	if rec.PID == r.alertPID {
		color = AlertColor
	} else {
		color = r.colors.PidColor(rec.PID)
	}
	tagColor := color
	if r.opts.TagColors {
		tagColor = r.colors.TagColor(tag)
	}

	var b strings.Builder
	b.WriteString(termstyle.New().Foreground(color).Sequence())
	b.WriteString(rec.Time)
	b.WriteByte(' ')
	b.WriteString(padLeft(rec.PID, constants.IDWidth))
	b.WriteByte('/')
	b.WriteString(padRight(rec.TID, constants.IDWidth))
	b.WriteString(termstyle.Reset)
	b.WriteByte(' ')

	b.WriteString(termstyle.New().Foreground(tagColor).Sequence())
	b.WriteString(AlignTag(tag))
	b.WriteByte(' ')
	b.WriteString(termstyle.Reset)

	b.WriteString(badges[rec.Severity])
	b.WriteString(r.message(rec))
	return b.String()
}

func (r *Renderer) message(rec domain.Record) string {
	msg := r.opts.Rules.Apply(rec.Message)
	if rec.Severity == domain.SeverityError {
		if r.opts.Keyword != "" {
			msg = strings.ReplaceAll(msg, r.opts.Keyword, r.highlightErr)
		}
		msg = errorStyle.Render(msg)
	} else if r.opts.Keyword != "" {
		msg = strings.ReplaceAll(msg, r.opts.Keyword, r.highlight)
	}
	return IndentWrap(msg, constants.HeaderSize, r.opts.Width)
}

// AlignTag right-aligns tag to TagWidth runes, dropping leading runes from
// longer tags.
func AlignTag(tag string) string {
	n := utf8.RuneCountInString(tag)
	if n > constants.TagWidth {
		runes := []rune(tag)
		return string(runes[n-constants.TagWidth:])
	}
	return strings.Repeat(" ", constants.TagWidth-n) + tag
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// center pads s on both sides to width, putting the odd space on the right
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
