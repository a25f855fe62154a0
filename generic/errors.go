/*
errors.go - Error types for the calculator engine

ERROR CATEGORIES:
  1. Validation errors - bad limit, negative amount, unknown currency
  2. Parse errors - record dates that are not DD.MM.YYYY

Both are caller errors. Nothing in this module retries or recovers from them;
an operation that returns one has changed no state.

USAGE:
    if errors.Is(err, generic.ErrParse) {
        // reject the input
    }

    var verr *generic.ValidationError
    if errors.As(err, &verr) {
        log.Printf("bad %s: %s", verr.Field, verr.Reason)
    }
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is returned when an argument breaks a business rule.
	ErrValidation = errors.New("validation failed")

	// ErrParse is returned when a record date cannot be parsed.
	ErrParse = errors.New("parse failed")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError names the offending field and why it was rejected.
type ValidationError struct {
	Field  string
	Reason string
	Value  any
}

func NewValidationError(field, reason string, value any) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Value: value}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ParseError wraps the underlying time parsing failure.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse date %q, want DD.MM.YYYY: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError reports whether err was caused by bad caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrParse)
}
