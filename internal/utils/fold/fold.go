// Package fold compares text under Unicode case folding, so "ÉCLAIR" and
// "éclair" match the way a customer expects.
package fold

import (
	"strings"

	"golang.org/x/text/cases"
)

// String returns the case-folded form of s.
// A Caser is stateful, so each call builds its own.
func String(s string) string {
	return cases.Fold().String(s)
}

// Equal reports whether a and b are equal under case folding.
func Equal(a, b string) bool {
	return String(a) == String(b)
}

// Contains reports whether substr occurs in s under case folding.
// An empty substr matches everything.
func Contains(s, substr string) bool {
	return strings.Contains(String(s), String(substr))
}
