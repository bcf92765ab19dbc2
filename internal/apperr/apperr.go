// Package apperr defines the error type used for user-facing failures
package apperr

import "fmt"

// Error is a sentinel error with a message template and an optional cause.
// Copies produced by Fmt and Wrap still match the original sentinel with
// errors.Is.
type Error struct {
	Err     error
	base    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t == e || (e.base != nil && t == e.base)
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// Fmt returns a copy of the error with the message template filled in.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Err:     e.Err,
		base:    e.root(),
		Message: fmt.Sprintf(e.Message, args...),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Err:     err,
		base:    e.root(),
		Message: e.Message,
	}
}
