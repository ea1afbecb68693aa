package repository

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
)

// IDPolicy decides which identifier NextID hands out.
type IDPolicy int

const (
	// IDPolicyLast uses the identifier of the last record plus one. After the
	// newest record is deleted its identifier is handed out again.
	IDPolicyLast IDPolicy = iota
	// IDPolicyMax uses the largest identifier plus one.
	IDPolicyMax
)

// String returns the config spelling of p.
func (p IDPolicy) String() string {
	if p == IDPolicyMax {
		return "max"
	}
	return "last"
}

// ParseIDPolicy parses "last" or "max".
func ParseIDPolicy(s string) (IDPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return IDPolicyLast, nil
	case "max":
		return IDPolicyMax, nil
	default:
		return IDPolicyLast, errors.NewConfigError("ids.policy", fmt.Sprintf("unknown value %q (want last or max)", s), errors.ErrInvalidInput)
	}
}

type options struct {
	policy IDPolicy
	logger *zerolog.Logger
	name   string
}

// Option configures a Repository.
type Option func(*options)

// WithIDPolicy sets the identifier policy.
func WithIDPolicy(p IDPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLogger sets the logger used for load summaries and dropped lines.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithName sets the resource name used in errors and logs ("comic", "stock").
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
