// Package errors provides custom error types for the comic store.
// Every failure a repository or the checkout workflow can produce is either
// one of the sentinels below or a typed error that matches one of them via
// errors.Is, so callers never need to compare strings.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is, As and Join re-export the standard helpers so callers only import one package.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Common sentinel errors for the comic store
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a record already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that a field failed validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount indicates a non-positive stock adjustment
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrDuplicateStock indicates a stock record already exists for the comic
	ErrDuplicateStock = errors.New("duplicate stock record")

	// ErrInsufficientStock indicates a removal larger than the quantity on hand
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmptyCart indicates an operation that needs at least one cart line
	ErrEmptyCart = errors.New("cart is empty")

	// ErrEmptyCollection indicates a listing over a repository with no records
	ErrEmptyCollection = errors.New("no records")

	// ErrStorage indicates the backing file could not be read or written
	ErrStorage = errors.New("storage failure")

	// ErrMalformed indicates a persisted line that does not decode
	ErrMalformed = errors.New("malformed record")

	// ErrAccessDenied indicates a failed credential check
	ErrAccessDenied = errors.New("access denied")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a field that failed validation
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// EmptyCollectionError reports a listing over a resource that holds no records
type EmptyCollectionError struct {
	Resource string
}

// Error implements the error interface
func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("no %s found", e.Resource)
}

// Is implements errors.Is support
func (e *EmptyCollectionError) Is(target error) bool {
	return target == ErrEmptyCollection
}

// NewEmptyCollectionError creates a new EmptyCollectionError
func NewEmptyCollectionError(resource string) *EmptyCollectionError {
	return &EmptyCollectionError{Resource: resource}
}

// StockError represents a rejected stock ledger operation.
// Err is one of ErrInvalidAmount, ErrInsufficientStock or ErrDuplicateStock.
type StockError struct {
	Operation string // "create", "add", "remove", "set"
	ComicID   int
	Requested int
	Available int
	Err       error
}

// Error implements the error interface
func (e *StockError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInsufficientStock):
		return fmt.Sprintf("cannot %s %d of comic %d: only %d in stock", e.Operation, e.Requested, e.ComicID, e.Available)
	case errors.Is(e.Err, ErrInvalidAmount):
		return fmt.Sprintf("cannot %s %d of comic %d: amount must be positive", e.Operation, e.Requested, e.ComicID)
	default:
		return fmt.Sprintf("cannot %s stock for comic %d: %v", e.Operation, e.ComicID, e.Err)
	}
}

// Unwrap implements errors.Unwrap
func (e *StockError) Unwrap() error {
	return e.Err
}

// NewStockError creates a new StockError
func NewStockError(operation string, comicID, requested, available int, err error) *StockError {
	return &StockError{
		Operation: operation,
		ComicID:   comicID,
		Requested: requested,
		Available: available,
		Err:       err,
	}
}

// CheckoutError reports the cart line that stopped a checkout.
// Committed is the number of lines already written to the order history.
type CheckoutError struct {
	Line      int
	Committed int
	Err       error
}

// Error implements the error interface
func (e *CheckoutError) Error() string {
	return fmt.Sprintf("checkout stopped at line %d (%d committed): %v", e.Line+1, e.Committed, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists) || errors.Is(err, ErrDuplicateStock)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsStorage checks if an error came from the backing file
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsEmptyCart checks if an error reports an empty cart
func IsEmptyCart(err error) bool {
	return errors.Is(err, ErrEmptyCart)
}

// IsEmptyCollection checks if an error reports a listing with no records
func IsEmptyCollection(err error) bool {
	return errors.Is(err, ErrEmptyCollection)
}

// IsAccessDenied checks if an error is a failed credential check
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsStockError checks if an error was rejected by the stock ledger
func IsStockError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrDuplicateStock)
}

// ParseError represents a persisted line that could not be decoded
type ParseError struct {
	Format  string // "comic", "customer", "stock", "order", "credential"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s record at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *IOError) Is(target error) bool {
	return target == ErrStorage
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during a repository operation
type ResourceError struct {
	Operation string // "add", "update", "delete", "load"
	Resource  string // "comic", "customer", "stock", "order"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// AuthenticationError represents a failed login
type AuthenticationError struct {
	Username string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.Username != "" {
		return fmt.Sprintf("authentication failed for %q: %s", e.Username, e.Message)
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAccessDenied
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(username, message string, err error) *AuthenticationError {
	return &AuthenticationError{
		Username: username,
		Message:  message,
		Err:      err,
	}
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

