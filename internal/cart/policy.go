package cart

import (
	"fmt"
	"strings"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

// Policy decides what a checkout does when a line cannot be committed.
type Policy int

const (
	// PolicyBestEffort commits lines in order and stops at the first failure.
	// Lines committed before the failure stay committed.
	PolicyBestEffort Policy = iota
	// PolicyValidateFirst resolves and stock-checks every line before
	// committing any of them.
	PolicyValidateFirst
)

// String returns the config spelling of p.
func (p Policy) String() string {
	if p == PolicyValidateFirst {
		return "validate-first"
	}
	return "best-effort"
}

// ParsePolicy parses "best-effort" or "validate-first".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "best-effort", "besteffort":
		return PolicyBestEffort, nil
	case "validate-first", "validatefirst", "strict":
		return PolicyValidateFirst, nil
	default:
		return PolicyBestEffort, errors.NewConfigError("checkout.policy", fmt.Sprintf("unknown value %q (want best-effort or validate-first)", s), errors.ErrInvalidInput)
	}
}
