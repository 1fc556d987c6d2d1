// Package jsonerrors provides structured error types for jsontools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - PathError: a mutation path that does not resolve to a value
//   - SyntaxError: an ill-formed path expression
//   - DocumentError: input JSON that could not be scanned during a splice
//   - TypeError: a path component applied to a value of the wrong kind
//
// # Usage with errors.Is
//
//	out, err := mutate.Delete(doc, "users.3.name")
//	if err != nil {
//	    if errors.Is(err, jsonerrors.ErrPathNotFound) {
//	        // Nothing to delete; treat as a no-op
//	    }
//	}
package jsonerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrPathNotFound indicates a mutation path resolved to no value.
	ErrPathNotFound = errors.New("path not found")

	// ErrPathInvalid indicates an ill-formed path expression.
	ErrPathInvalid = errors.New("path invalid")

	// ErrJSONInvalid indicates the input document could not be scanned.
	ErrJSONInvalid = errors.New("json invalid")

	// ErrTypeMismatch indicates a path component was applied to the wrong kind
	// of value, such as an array index applied to a string.
	ErrTypeMismatch = errors.New("type mismatch")
)

// PathError represents a mutation path that failed to resolve.
type PathError struct {
	// Path is the full path expression supplied by the caller
	Path string
	// Component is the path component that failed to resolve, if known
	Component string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PathError) Error() string {
	msg := "path not found"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Component != "" {
		msg += fmt.Sprintf(" (at %q)", e.Component)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PathError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PathError) Is(target error) bool {
	return target == ErrPathNotFound
}

// SyntaxError represents an ill-formed path expression.
// Mutation paths accept only object keys and array indexes; query-only forms
// such as wildcards, queries, multipaths, and modifiers are rejected with
// this error, as is any expression the path parser cannot tokenise.
type SyntaxError struct {
	// Path is the full path expression supplied by the caller
	Path string
	// Offset is the byte offset of the offending token (0 if unknown)
	Offset int
	// Message describes the syntax problem
	Message string
}

// Error returns a human-readable error message.
func (e *SyntaxError) Error() string {
	msg := "path invalid"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Offset > 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrPathInvalid
}

// DocumentError represents input JSON that could not be scanned while a
// mutation was locating its splice point.
type DocumentError struct {
	// Offset is the byte offset at which scanning stopped (0 if unknown)
	Offset int
	// Message describes the problem
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DocumentError) Error() string {
	msg := "json invalid"
	if e.Offset > 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DocumentError) Is(target error) bool {
	return target == ErrJSONInvalid
}

// TypeError represents a path component applied to a value of the wrong kind,
// such as descending into a number or indexing a string.
type TypeError struct {
	// Path is the full path expression supplied by the caller
	Path string
	// Component is the component that hit the wrong kind of value
	Component string
	// Want names the kind of value the component requires ("object", "array")
	Want string
	// Got names the kind of value that was actually found
	Got string
}

// Error returns a human-readable error message.
func (e *TypeError) Error() string {
	msg := "type mismatch"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Component != "" {
		msg += fmt.Sprintf(" (at %q)", e.Component)
	}
	if e.Want != "" && e.Got != "" {
		msg += fmt.Sprintf(": want %s, got %s", e.Want, e.Got)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
