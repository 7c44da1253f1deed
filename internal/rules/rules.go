// Package rules applies an ordered table of regular expression substitutions
// to message text.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charliek/colorcat/internal/domain"
	"github.com/charliek/colorcat/internal/termstyle"
)

// MaxPatternLength is the maximum allowed length for rule patterns
const MaxPatternLength = 256

var token = regexp.MustCompile(`\{([a-z]+)\}`)

// Set is a compiled, ordered list of rules
type Set struct {
	rules []compiled
}

type compiled struct {
	re      *regexp.Regexp
	replace string
}

// Compile validates and compiles rules. Each replacement has its style
// tokens expanded to escape sequences once, here.
func Compile(rules []domain.Rule) (*Set, error) {
	s := &Set{rules: make([]compiled, 0, len(rules))}
	for i, r := range rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("%w: rule %d: empty pattern", domain.ErrInvalidPattern, i)
		}
		if len(r.Pattern) > MaxPatternLength {
			return nil, fmt.Errorf("%w: rule %d: pattern exceeds maximum length of %d characters", domain.ErrInvalidPattern, i, MaxPatternLength)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: %v", domain.ErrInvalidPattern, i, err)
		}
		replace, err := ExpandTokens(r.Replace)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: %v", domain.ErrInvalidPattern, i, err)
		}
		s.rules = append(s.rules, compiled{re: re, replace: replace})
	}
	return s, nil
}

// Len returns the number of rules
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Apply runs every rule over text in order
func (s *Set) Apply(text string) string {
	if s == nil {
		return text
	}
	for _, r := range s.rules {
		text = r.re.ReplaceAllString(text, r.replace)
	}
	return text
}

// ExpandTokens replaces {color}, {bold} and {reset} with escape sequences.
// Unknown tokens are an error.
func ExpandTokens(template string) (string, error) {
	var unknown []string
	out := token.ReplaceAllStringFunc(template, func(tok string) string {
		name := tok[1 : len(tok)-1]
		switch name {
		case "reset":
			return termstyle.Reset
		case "bold":
			return termstyle.New().Bold().Sequence()
		}
		c, err := domain.ParseColor(name)
		if err != nil {
			unknown = append(unknown, tok)
			return tok
		}
		return termstyle.New().Foreground(c).Sequence()
	})
	if len(unknown) > 0 {
		return "", fmt.Errorf("unknown style tokens: %s", strings.Join(unknown, ", "))
	}
	return out, nil
}
