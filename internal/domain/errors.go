package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used for classification with errors.Is. Handlers match on
// these to decide how a failure is shown to the user.
var (
	// ErrValidation marks malformed input: a bad phone, date, or name.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced contact or phone that does not exist.
	ErrNotFound = errors.New("not found")
)

// userError carries the exact message shown to the user while still matching
// its sentinel through errors.Is.
type userError struct {
	kind error
	msg  string
}

func (e *userError) Error() string { return e.msg }

func (e *userError) Unwrap() error { return e.kind }

// Validationf builds a validation error whose text is the formatted message.
func Validationf(format string, args ...any) error {
	return &userError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error whose text is the formatted message.
func NotFoundf(format string, args ...any) error {
	return &userError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}
