package domain

// Severity is the single-letter logcat priority
type Severity string

const (
	SeverityVerbose Severity = "V"
	SeverityDebug   Severity = "D"
	SeverityInfo    Severity = "I"
	SeverityWarn    Severity = "W"
	SeverityError   Severity = "E"
)

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}

// Valid returns true if s is one of V, D, I, W or E
func (s Severity) Valid() bool {
	switch s {
	case SeverityVerbose, SeverityDebug, SeverityInfo, SeverityWarn, SeverityError:
		return true
	}
	return false
}

// Record is a single parsed logcat line in threadtime format.
//
// Fields:
//   - Date: "MM-DD"
//   - Time: "HH:MM:SS.mmm"
//   - PID, TID: decimal digits, unpadded
//   - Severity: priority letter
//   - Tag: everything between the severity and the separator, untrimmed
//   - Sep: the single separator byte after the tag (':', ' ' or '+')
//   - Message: the rest of the line after Sep
type Record struct {
	Date     string
	Time     string
	PID      string
	TID      string
	Severity Severity
	Tag      string
	Sep      string
	Message  string
}

// Body reconstructs the part of the line that follows the severity letter
func (r Record) Body() string {
	return r.Tag + r.Sep + r.Message
}

// Rule rewrites message text. Replace may reference capture groups ($1) and
// style tokens such as {blue} or {reset}.
type Rule struct {
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
}
