package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrStatusIsInvalid  = errors.New("status is invalid")
	ErrPersistence      = errors.New("persistence failure")
)

// ValidationFailedError carries every rule violation found in a submission.
// Details are human-readable and ordered as the fields were checked.
type ValidationFailedError struct {
	Details []string
	Cause   error
}

func NewValidationFailedErrorWithCause(cause error, details ...string) *ValidationFailedError {
	return &ValidationFailedError{Details: details, Cause: cause}
}

func (e *ValidationFailedError) Error() string {
	msg := ErrValidationFailed.Error()
	if len(e.Details) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Details, "; "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValidationFailedError) Unwrap() error {
	return ErrValidationFailed
}

// StatusIsInvalidError reports a status label that is not part of the lifecycle.
// Allowed lists the accepted labels so callers can echo them back.
type StatusIsInvalidError struct {
	Value   string
	Allowed []string
}

func NewStatusIsInvalidError(value string, allowed []string) *StatusIsInvalidError {
	return &StatusIsInvalidError{Value: value, Allowed: allowed}
}

func (e *StatusIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %q is not one of [%s]",
		ErrStatusIsInvalid, sanitize(e.Value), strings.Join(e.Allowed, ", "))
}

func (e *StatusIsInvalidError) Unwrap() error {
	return ErrStatusIsInvalid
}

// PersistenceError wraps a failure of the backing store during Operation.
type PersistenceError struct {
	Operation string
	Cause     error
}

func NewPersistenceErrorWithCause(operation string, cause error) *PersistenceError {
	return &PersistenceError{Operation: operation, Cause: cause}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPersistence, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPersistence, e.Operation)
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistence
}
