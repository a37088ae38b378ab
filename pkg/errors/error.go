// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Configuration errors (100-199): Invalid run configuration and parameters
//   - Cursor errors (200-299): Bar cursor range and state violations
//   - View errors (300-399): Bounded view access violations
//   - Registration errors (400-499): Derived series registration failures
//   - Position errors (500-599): Position state machine misuse
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidConfiguration, "empty series")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeLengthMismatch, "indicator %s returned %d values", name, n)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeLookAheadViolation) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error or
// *LookAheadError type. Returns ErrCodeUnknown otherwise.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	var la *LookAheadError
	if errors.As(err, &la) {
		return ErrCodeLookAheadViolation
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// LookAheadError represents an access past the causal boundary of a run: a
// bounded view was indexed beyond the current cursor position, or before the
// start of the series.
type LookAheadError struct {
	Index    int // Index as requested by the caller
	Resolved int // Resolved absolute index
	Cursor   int // Cursor position at the time of access
}

// NewLookAheadError creates a new LookAheadError.
func NewLookAheadError(index, resolved, cursor int) *LookAheadError {
	return &LookAheadError{
		Index:    index,
		Resolved: resolved,
		Cursor:   cursor,
	}
}

// Error implements the error interface.
func (e *LookAheadError) Error() string {
	if e.Resolved < 0 {
		return fmt.Sprintf("[%d] index %d resolves to %d, before the start of the series (cursor: %d)",
			ErrCodeLookAheadViolation, e.Index, e.Resolved, e.Cursor)
	}

	return fmt.Sprintf("[%d] index %d resolves to %d, past the current bar (cursor: %d)",
		ErrCodeLookAheadViolation, e.Index, e.Resolved, e.Cursor)
}

// IsLookAheadError checks if an error is a LookAheadError.
// It uses errors.As to check the error chain.
func IsLookAheadError(err error) bool {
	var lookAheadErr *LookAheadError

	return errors.As(err, &lookAheadErr)
}
