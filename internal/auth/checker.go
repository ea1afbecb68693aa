package auth

import (
	"strings"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/errors"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

// Check reports whether username and password match a line of the file.
// Both sides are compared trimmed.
// A missing or empty file, an unreadable file, or no matching line is an
// *errors.AuthenticationError; Check never creates the file.
func (c *Checker) Check(username, password string) error {
	username, password = strings.TrimSpace(username), strings.TrimSpace(password)
	creds, err := c.credentials()
	if err != nil {
		return errors.NewAuthenticationError(username, "credentials unavailable", err)
	}
	if len(creds) == 0 {
		return errors.NewAuthenticationError(username, "no admin credentials configured", nil)
	}
	for _, cred := range creds {
		if cred.Username == username && cred.Password == password {
			return nil
		}
	}
	return errors.NewAuthenticationError(username, "invalid username or password", nil)
}

// State inspects the credential file without checking a login.
func (c *Checker) State() State {
	ok, err := c.store.Exists(c.path)
	if err != nil || !ok {
		return StateMissing
	}
	lines, err := c.store.ReadLines(c.path)
	if err != nil {
		return StateInvalid
	}
	nonBlank := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		nonBlank++
		if _, err := records.ParseCredential(line); err == nil {
			return StateConfigured
		}
	}
	if nonBlank == 0 {
		return StateMissing
	}
	return StateInvalid
}

// credentials returns every well-formed line, or nil when the file is absent.
func (c *Checker) credentials() ([]records.Credential, error) {
	ok, err := c.store.Exists(c.path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	lines, err := c.store.ReadLines(c.path)
	if err != nil {
		return nil, err
	}

	var creds []records.Credential
	for _, line := range lines {
		if line == "" {
			continue
		}
		if cred, err := records.ParseCredential(line); err == nil {
			creds = append(creds, cred)
		}
	}
	return creds, nil
}

// Check verifies one login against the credential file at path.
func Check(store Reader, path, username, password string) error {
	return NewChecker(store, path).Check(username, password)
}
