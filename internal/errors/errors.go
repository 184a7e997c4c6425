// Package errors provides the structured error type used across hue.
// Errors carry a Code, the operation that failed, and an optional cause, and
// support errors.Is (matched by code) and errors.As.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies a failure.
type Code int

const (
	// Unknown indicates an unclassified error.
	Unknown Code = iota
	// Configuration indicates an unrecognized scheme, mode, family or an
	// otherwise impossible engine input. It can only originate from code.
	Configuration
	// Validation indicates invalid application configuration values.
	Validation
	// Unavailable indicates tokens have not been computed yet.
	Unavailable
	// Preference indicates a corrupt or unsupported persisted preference.
	Preference
	// Persistence indicates the preference could not be read or written.
	Persistence
	// NotFound indicates a named resource (e.g. a component) does not exist.
	NotFound
	// Unsupported indicates an operation the current state does not allow.
	Unsupported
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case Unknown:
		return "Unknown"
	case Configuration:
		return "Configuration"
	case Validation:
		return "Validation"
	case Unavailable:
		return "Unavailable"
	case Preference:
		return "Preference"
	case Persistence:
		return "Persistence"
	case NotFound:
		return "NotFound"
	case Unsupported:
		return "Unsupported"
	default:
		return fmt.Sprintf("Code(%d)", c)
	}
}

// Error is a coded application error.
type Error struct {
	Code    Code   // Error category
	Message string // Human-readable error message
	Op      string // Operation that failed (e.g., "tokens.Build")
	Cause   error  // Underlying error, if any
}

// New creates a new Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new Error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with additional context.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(code Code, cause error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// WithOp sets the operation and returns the error for chaining.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// Error implements the error interface. The format is "op: message: cause"
// with the op and cause parts omitted when unset.
func (e *Error) Error() string {
	if e.Op != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// GetCode extracts the error code from an error.
// Returns Unknown if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}

// IsCode checks if an error has a specific code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// Is and As forward to the standard library so callers need only this package.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target interface{}) bool { return errors.As(err, target) }

// IsConfiguration reports whether err is a configuration error, i.e. an
// integration bug that should surface to the developer.
func IsConfiguration(err error) bool {
	return IsCode(err, Configuration)
}

// Sentinel errors. Compare with errors.Is; they match any error of the same code.
var (
	// ErrTokensUnavailable is reported when tokens are requested before the
	// theme store has finished initializing.
	ErrTokensUnavailable = New(Unavailable, "color tokens not yet available")
	// ErrInvalidPreference marks a persisted preference that was replaced by defaults.
	ErrInvalidPreference = New(Preference, "invalid persisted preference")
	// ErrUnknownComponent is returned for an unregistered generator name.
	ErrUnknownComponent = New(NotFound, "unknown component")
	// ErrNotReady is returned when an operation requires a ready theme store.
	ErrNotReady = New(Unsupported, "theme store is not ready")
)
