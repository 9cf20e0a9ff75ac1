// Package clierr carries explicit process exit codes through error
// chains, so main can map any failure to a code without inspecting
// each error site.
package clierr

import (
	"errors"
	"fmt"
)

// Exit codes used by the dctap CLI.
const (
	CodeGeneric = 1 // unclassified failure
	CodeUsage   = 2 // bad arguments or unusable settings
	CodeFormat  = 3 // source fails the format precondition
)

// ExitError is an error with an explicit process exit code. It wraps a
// cause so errors.Is/As traverse it.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Newf is a formatted variant.
func Newf(code int, format string, args ...any) error {
	return &ExitError{code: normalize(code), msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an ExitError around an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// ExitCodeOf extracts an exit code from any error, defaulting to
// CodeGeneric, so main stays dumb.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return CodeGeneric
}

func normalize(code int) int {
	// Exit code 0 means success; errors are never 0.
	if code <= 0 {
		return CodeGeneric
	}
	return code
}
