package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by services and handlers. Anything not matching one
// of these is treated as an internal failure.
var (
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("already exists")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("not authorised")
	ErrNotFound        = errors.New("not found")
)

// Error is a client-facing failure: Message is safe to return to the caller
// and Kind is one of the taxonomy sentinels above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Errorf(kind error, format string, args ...interface{}) error {
	return NewError(kind, fmt.Sprintf(format, args...))
}
