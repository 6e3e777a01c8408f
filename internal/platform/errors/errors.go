// Package errors provides error types and utilities for biorules.
// It extends the standard errors package with additional context and wrapping capabilities.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recipe pipeline. Callers wrap them with context and
// test for them with Is.
var (
	// ErrTemplate indicates the recipe template could not be rendered
	ErrTemplate = errors.New("template rendering failed")

	// ErrEmptyDocument indicates the rendered document parsed to nothing
	ErrEmptyDocument = errors.New("parsing failed")

	// ErrMalformedDocument indicates the rendered document is not valid YAML
	// or has an unexpected shape
	ErrMalformedDocument = errors.New("malformed document")

	// ErrNoPackageName indicates package.name is missing
	ErrNoPackageName = errors.New("no package name")

	// ErrNoTestSection indicates the test section is missing or null
	ErrNoTestSection = errors.New("no test section")

	// ErrNoTestSpec indicates the test section has neither commands nor imports
	ErrNoTestSpec = errors.New("no test commands or imports")

	// ErrProvision indicates the ephemeral environment could not be created
	ErrProvision = errors.New("environment provisioning failed")

	// ErrTimeout indicates an operation exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
//
// Example:
//
//	if err := env.Run(ctx, cmd); err != nil {
//	    return errors.Wrapf(err, "running %q", cmd)
//	}
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Detail attaches detail text to a sentinel so that the message reads
// "<sentinel>: <detail>" while Is still matches the sentinel.
func Detail(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsTimeout reports whether the error is a timeout error
func IsTimeout(err error) bool {
	return Is(err, ErrTimeout)
}

// IsNotFound reports whether the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}

// IsProvision reports whether the error is an environment provisioning error
func IsProvision(err error) bool {
	return Is(err, ErrProvision)
}

// IsStructural reports whether err describes a recipe that cannot be
// rendered or parsed into package metadata.
func IsStructural(err error) bool {
	for _, s := range []error{
		ErrTemplate, ErrEmptyDocument, ErrMalformedDocument,
		ErrNoPackageName, ErrNoTestSection, ErrNoTestSpec,
	} {
		if Is(err, s) {
			return true
		}
	}
	return false
}
