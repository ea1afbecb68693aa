// Package matcher filters record names with glob or regex patterns.
//
// Patterns are case-insensitive. A pattern containing regex metacharacters
// such as ^, $, + or | is compiled as a regular expression; anything else is
// a shell glob (*, ?, [...]) matched against the whole name.
package matcher

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/utils/fold"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

// PatternType selects how a pattern is interpreted.
type PatternType int

const (
	// Glob uses shell-style glob patterns (*, ?, []).
	Glob PatternType = iota
	// Regex uses regular expressions.
	Regex
	// Auto detects the pattern type.
	Auto
)

// String returns a string representation of the PatternType.
func (pt PatternType) String() string {
	switch pt {
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Matcher reports whether a name matches one pattern.
type Matcher struct {
	pattern     string
	patternType PatternType
	glob        string
	compiled    *regexp.Regexp
}

// New compiles pattern. An invalid pattern is a validation error on field "match".
func New(patternType PatternType, pattern string) (*Matcher, error) {
	m := &Matcher{pattern: pattern, patternType: patternType}
	if patternType == Auto {
		m.patternType = Detect(pattern)
	}

	switch m.patternType {
	case Glob:
		m.glob = fold.String(pattern)
		if _, err := filepath.Match(m.glob, ""); err != nil {
			return nil, errors.NewValidationError("match", pattern, "invalid glob pattern")
		}
	case Regex:
		re := pattern
		if !strings.HasPrefix(re, "(?i)") {
			re = "(?i)" + re
		}
		compiled, err := regexp.Compile(re)
		if err != nil {
			return nil, errors.WrapValidation("match", err)
		}
		m.compiled = compiled
	default:
		return nil, errors.NewValidationError("match", pattern, "unsupported pattern type")
	}
	return m, nil
}

// Match reports whether input matches the pattern.
func (m *Matcher) Match(input string) bool {
	if m.compiled != nil {
		return m.compiled.MatchString(input)
	}
	ok, _ := filepath.Match(m.glob, fold.String(input))
	return ok
}

// MatchAny reports whether any of inputs matches.
func (m *Matcher) MatchAny(inputs ...string) bool {
	for _, in := range inputs {
		if m.Match(in) {
			return true
		}
	}
	return false
}

// Pattern returns the original pattern string.
func (m *Matcher) Pattern() string { return m.pattern }

// Type returns the resolved pattern type.
func (m *Matcher) Type() PatternType { return m.patternType }

var regexIndicators = []string{
	"^", "$", `\d`, `\w`, `\s`, `\D`, `\W`, `\S`,
	"(?", "{", "}", "+", "|", "(", ")",
}

// Detect guesses whether pattern is a regex or a glob.
func Detect(pattern string) PatternType {
	for _, indicator := range regexIndicators {
		if strings.Contains(pattern, indicator) {
			return Regex
		}
	}
	return Glob
}

// Filter keeps the items for which any key matches pattern. An empty
// pattern keeps everything.
func Filter[T any](items []T, pattern string, keys func(T) []string) ([]T, error) {
	if pattern == "" {
		return items, nil
	}
	m, err := New(Auto, pattern)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if m.MatchAny(keys(item)...) {
			out = append(out, item)
		}
	}
	return out, nil
}
