package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// Business events rejected before any write wrap this error.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnknownAccount indicates that a fund or category could not be resolved to a
// registered ledger account and auto-creation is disabled.
var ErrUnknownAccount = errors.New("unknown account")

// ErrConflict indicates that the operation conflicts with the current state of
// the resource (e.g. reversing a journal that is already a reversal).
var ErrConflict = errors.New("conflict with current resource state")

// ErrStoreUnavailable indicates a transient storage failure. Callers may retry
// the posting with the same idempotency key.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
