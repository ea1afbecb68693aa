// Package auth checks the admin credential stored in a single-line file.
// Local checks only; there is no lockout, hashing, or session handling.
package auth

// State describes the credential file.
type State int

const (
	// StateConfigured means the file holds at least one well-formed credential.
	StateConfigured State = iota
	// StateMissing means the file does not exist or is empty.
	StateMissing
	// StateInvalid means the file exists but no line is a valid credential.
	StateInvalid
)

// String returns a short label for s.
func (s State) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	case StateMissing:
		return "missing"
	default:
		return "invalid"
	}
}

// Reader is the part of the flat-file store the checker needs.
type Reader interface {
	Exists(path string) (bool, error)
	ReadLines(path string) ([]string, error)
}

// Checker verifies admin logins against one credential file.
type Checker struct {
	store Reader
	path  string
}

// NewChecker creates a checker for the credential file at path.
func NewChecker(store Reader, path string) *Checker {
	return &Checker{store: store, path: path}
}
