// Package bridgeerrors classifies every rejection of a bridge or commitment operation.
//
// A rejected operation leaves no trace. Authorization, precondition and transfer failures can
// be retried once the cause is gone; a replay rejection is permanent.
package bridgeerrors

import (
	"errors"
)

var (
	// ErrUnauthorized the caller does not hold the role the operation requires
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPrecondition the current state does not allow the operation
	ErrPrecondition = errors.New("precondition failed")
	// ErrTransferFailed an asset capability refused or failed the movement of value
	ErrTransferFailed = errors.New("transfer failed")
	// ErrReplay the operation targets an id that has already been consumed
	ErrReplay = errors.New("replay")
)

// Error is a named rejection belonging to one of the classes above
type Error struct {
	Class error
	Msg   string
}

// New returns a named error of the given class
func New(class error, msg string) *Error {
	return &Error{Class: class, Msg: msg}
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches the class sentinel as well as the named error itself
func (e *Error) Is(target error) bool {
	if target == e.Class {
		return true
	}
	t, ok := target.(*Error)
	return ok && t == e
}

// Unwrap exposes the class so errors.Is works on wrapped values too
func (e *Error) Unwrap() error {
	return e.Class
}

// Class returns the class sentinel of err, nil if err was not raised by a bridge rejection
func Class(err error) error {
	for _, c := range []error{ErrUnauthorized, ErrPrecondition, ErrTransferFailed, ErrReplay} {
		if errors.Is(err, c) {
			return c
		}
	}
	return nil
}

// ClassName is a short label for metrics and logs
func ClassName(err error) string {
	switch Class(err) {
	case ErrUnauthorized:
		return "unauthorized"
	case ErrPrecondition:
		return "precondition"
	case ErrTransferFailed:
		return "transfer"
	case ErrReplay:
		return "replay"
	default:
		return "internal"
	}
}

// IsPermanent is true when retrying err can never succeed
func IsPermanent(err error) bool {
	return errors.Is(err, ErrReplay)
}

// IsRetryable is true when the same call may succeed later without any admin intervention
func IsRetryable(err error) bool {
	return errors.Is(err, ErrPrecondition) || errors.Is(err, ErrTransferFailed)
}

// Transfer wraps a failure reported by an asset capability
func Transfer(op string, err error) error {
	return &transferError{op: op, cause: err}
}

type transferError struct {
	op    string
	cause error
}

func (e *transferError) Error() string {
	return e.op + ": " + ErrTransferFailed.Error() + ": " + e.cause.Error()
}

func (e *transferError) Unwrap() []error {
	return []error{ErrTransferFailed, e.cause}
}
