package rncryptor

import (
	"errors"
	"fmt"
)

// Error types represent different categories of errors

// ValidationError represents a parameter validation error
type ValidationError struct {
	Field   string // The field or parameter that failed validation
	Value   any    // The invalid value
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// HeaderError represents a malformed or unsupported container header.
// It always wraps one of the header sentinel errors so callers can
// distinguish "too short" from "unsupported version/options" with errors.Is.
type HeaderError struct {
	Field   string // The header field that failed, if applicable
	Value   any    // The offending value
	Message string // Human-readable error message
	Err     error  // Sentinel identifying the failure kind
}

func (e *HeaderError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("header error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("header error: %s", e.Message)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

// RandomSourceError represents a failure to draw entropy while generating
// header fields. It is fatal: header fields must never be defaulted or
// partially filled.
type RandomSourceError struct {
	Field   string // The field being generated ("encryption salt", "hmac salt", "iv")
	Message string // Human-readable error message
	Err     error  // Underlying read error
}

func (e *RandomSourceError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("random source error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("random source error: %s", e.Message)
}

func (e *RandomSourceError) Unwrap() error {
	return e.Err
}

// CipherError represents a failure to initialize the block cipher for an
// encryption context
type CipherError struct {
	Session string // Context session ID, if already assigned
	Message string // Human-readable error message
	Err     error  // Underlying error from the cipher primitive
}

func (e *CipherError) Error() string {
	if e.Session != "" {
		return fmt.Sprintf("cipher error: session %s: %s", e.Session, e.Message)
	}
	return fmt.Sprintf("cipher error: %s", e.Message)
}

func (e *CipherError) Unwrap() error {
	return e.Err
}

// Common sentinel errors
var (
	ErrHeaderTooShort     = errors.New("header too short")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrUnsupportedOptions = errors.New("unsupported header options")
	ErrNilHeader          = errors.New("header cannot be nil")
	ErrInvalidKey         = errors.New("invalid encryption key")
)

// Helper functions for creating structured errors

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewHeaderError creates a new header error wrapping the given sentinel
func NewHeaderError(field string, value any, sentinel error) error {
	return &HeaderError{
		Field:   field,
		Value:   value,
		Message: sentinel.Error(),
		Err:     sentinel,
	}
}

// NewRandomSourceError creates a new random source error
func NewRandomSourceError(field string, err error) error {
	return &RandomSourceError{
		Field:   field,
		Message: err.Error(),
		Err:     err,
	}
}

// NewCipherError creates a new cipher error
func NewCipherError(session string, err error) error {
	return &CipherError{
		Session: session,
		Message: err.Error(),
		Err:     err,
	}
}

// Error checking helpers

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsHeaderError checks if an error is a header error
func IsHeaderError(err error) bool {
	var he *HeaderError
	return errors.As(err, &he)
}

// IsRandomSourceError checks if an error is a random source error
func IsRandomSourceError(err error) bool {
	var re *RandomSourceError
	return errors.As(err, &re)
}

// IsCipherError checks if an error is a cipher error
func IsCipherError(err error) bool {
	var ce *CipherError
	return errors.As(err, &ce)
}
