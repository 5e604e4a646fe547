package err

import (
	"errors"
	"strings"
)

// Error is the base error type shared by every package in the project.
//
// It carries the originating package, a machine-readable code, the operation
// that failed and an optional wrapped cause. Codes are what callers branch
// on; everything else is context for humans reading logs.
type Error struct {
	// Package identifies the originating package (e.g. "index", "store", "refs")
	Package string

	// Code is a machine-readable error code. Use the constants below.
	Code string

	// Op is the operation being performed when the error occurred,
	// e.g. "load", "persist", "resolve_head".
	Op string

	// Message provides brief human-readable context.
	Message string

	// Err is the underlying error. Nil for leaf errors.
	Err error
}

// Error implements the error interface.
// Format: [package][code] operation: message: wrapped_error
func (e *Error) Error() string {
	var parts []string

	var prefix strings.Builder
	if e.Package != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Package)
		prefix.WriteString("]")
	}
	if e.Code != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Code)
		prefix.WriteString("]")
	}
	if prefix.Len() > 0 {
		parts = append(parts, prefix.String())
	}

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	result := strings.Join(parts, ": ")

	if e.Err != nil {
		if result != "" {
			result += ": " + e.Err.Error()
		} else {
			result = e.Err.Error()
		}
	}

	return result
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by code. Two errors match if both carry the same
// non-empty code, which lets callers write errors.Is(err, &Error{Code: ...}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// New creates a new base error with the specified fields.
func New(pkg, code, op, message string, err error) *Error {
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Wrap wraps an error with package and operation context.
// Returns nil if err is nil.
func Wrap(err error, pkg, op string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Package: pkg,
		Op:      op,
		Err:     err,
	}
}

// WrapWithCode wraps an error with package, operation, and code.
// Returns nil if err is nil.
func WrapWithCode(err error, pkg, code, op string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Err:     err,
	}
}

// Error codes for the failures this system can report. The taxonomy is
// deliberately small: every failure is terminal for the current operation
// and callers only ever branch on these five kinds.
const (
	// CodeIoFailure wraps any underlying filesystem fault
	// (open, read, write, create, rename).
	CodeIoFailure = "IO_FAILURE"

	// CodeRepositoryNotFound means the locator walked up to the filesystem
	// root without finding a .blip directory.
	CodeRepositoryNotFound = "REPOSITORY_NOT_FOUND"

	// CodeCorruptIndex means a staged-index line did not split into exactly
	// two tokens. The whole load is rejected, never partially recovered.
	CodeCorruptIndex = "CORRUPT_INDEX"

	// CodeCorruptObjectStore means stored or referenced repository data
	// failed to decode: a commit object with a broken declaration line, a
	// missing object file, or a HEAD file without its symbolic prefix.
	CodeCorruptObjectStore = "CORRUPT_OBJECT_STORE"

	// CodeEmptyCommit means an attempt to finalize or write a commit whose
	// manifest is empty.
	CodeEmptyCommit = "EMPTY_COMMIT"
)

// IsCode checks if an error carries a specific code. Works through wrapping.
func IsCode(e error, code string) bool {
	var base *Error
	if errors.As(e, &base) {
		return base.Code == code
	}
	return false
}

// GetCode extracts the code from an error, or "" when it is not a base Error.
func GetCode(e error) string {
	var base *Error
	if errors.As(e, &base) {
		return base.Code
	}
	return ""
}
