// Package errors provides the structured error types for shellhist.
//
// This package defines base sentinel errors for common failure conditions,
// wrapped error types that add contextual information, and helper functions
// for error wrapping and type checking.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrIO - the history file could not be read or written
//   - ErrMalformed - the history file is not well-formed markup
//   - ErrInvalid - validation failed
//   - ErrNotFound - resource not found
//
// Wrapped error types (add context):
//   - ParseError{Path, Version, Err} - history file parse errors
//   - SaveError{Path, Err} - history file save errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	// Wrap with context using Wrap
//	return errors.Wrap(err, "loadHistory")
//
//	// Use structured error types
//	return &errors.ParseError{Path: path, Err: errors.ErrMalformed}
//
//	// Check error types
//	if errors.IsMalformed(err) {
//	    // handle malformed file
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrIO indicates the history file could not be read or written.
	ErrIO = baseError("I/O error")

	// ErrMalformed indicates the history file is not well-formed markup.
	ErrMalformed = baseError("malformed history file")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrNotFound indicates a resource was not found.
	ErrNotFound = baseError("not found")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// ParseError represents a failure while parsing a persisted history file.
type ParseError struct {
	// Path is the history file path.
	Path string
	// Version is the producer version read from the file, if any was seen
	// before the failure.
	Version string
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Version != "" {
		return fmt.Sprintf("parse %s (written by %s): %s", e.Path, e.Version, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SaveError represents a failure while writing a persisted history file.
type SaveError struct {
	// Path is the history file path.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %s", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsMalformed reports whether err is or wraps ErrMalformed.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AsParseError reports whether err can be typed as a *ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsSaveError reports whether err can be typed as a *SaveError.
func AsSaveError(err error) (*SaveError, bool) {
	var se *SaveError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
