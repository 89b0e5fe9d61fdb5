// Package apperrors wraps fatal errors with a stack trace so cake's top
// level can print one when a run aborts.
package apperrors

import "github.com/go-errors/errors"

// Wrap attaches a stack trace to err, captured at the call site. Wrapping
// an already-wrapped error is a no-op: go-errors.Wrap recognizes its own
// type and returns it unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, 1)
}

// Stack renders err's message and captured stack trace. An error that was
// never wrapped with Wrap gets a trace captured at Stack's caller.
func Stack(err error) string {
	wrapped := errors.Wrap(err, 1)
	return wrapped.ErrorStack()
}
