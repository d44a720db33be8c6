package errs

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a client-facing message classified by one of the sentinel kinds above.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func New(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

var (
	ErrBookNotFound        = New(ErrNotFound, "book not found")
	ErrBookNotAvailable    = New(ErrNotFound, "book not available for borrowing")
	ErrRecordNotFound      = New(ErrNotFound, "borrow record not found")
	ErrTitleAuthorRequired = New(ErrValidation, "title and author are required")
	ErrEmailInUse          = New(ErrConflict, "email already in use")
	ErrInvalidCredentials  = New(ErrUnauthorized, "invalid credentials")
)
