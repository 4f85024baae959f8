package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinel errors. Concrete errors are built with NewError/WithError and marked with one of these.
var (
	ErrNotFound              = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists         = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation            = new(ErrCodeValidation, "validation error")
	ErrInvalidInput          = new(ErrCodeInvalidInput, "invalid input")
	ErrInvalidRule           = new(ErrCodeInvalidRule, "invalid tax rule")
	ErrRepositoryUnavailable = new(ErrCodeRepositoryUnavailable, "rule repository unavailable")
	ErrDatabase              = new(ErrCodeDatabase, "database error")
	ErrSystem                = new(ErrCodeSystemError, "system error")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:              http.StatusNotFound,
		ErrAlreadyExists:         http.StatusConflict,
		ErrValidation:            http.StatusBadRequest,
		ErrInvalidInput:          http.StatusBadRequest,
		ErrInvalidRule:           http.StatusUnprocessableEntity,
		ErrRepositoryUnavailable: http.StatusServiceUnavailable,
		ErrDatabase:              http.StatusInternalServerError,
		ErrSystem:                http.StatusInternalServerError,
	}
)

const (
	ErrCodeNotFound              = "not_found"
	ErrCodeAlreadyExists         = "already_exists"
	ErrCodeValidation            = "validation_error"
	ErrCodeInvalidInput          = "invalid_input"
	ErrCodeInvalidRule           = "invalid_rule"
	ErrCodeRepositoryUnavailable = "repository_unavailable"
	ErrCodeDatabase              = "database_error"
	ErrCodeSystemError           = "system_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is a uniqueness conflict
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidInput checks if an error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidRule checks if an error is an invalid rule error
func IsInvalidRule(err error) bool {
	return errors.Is(err, ErrInvalidRule)
}

// IsRepositoryUnavailable checks if an error came from the rule source
func IsRepositoryUnavailable(err error) bool {
	return errors.Is(err, ErrRepositoryUnavailable)
}

// Hint returns the first user-facing hint attached to err, or its message.
func Hint(err error) string {
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		return hints[0]
	}
	return err.Error()
}

// Code returns the machine-readable code of the sentinel err is marked with.
func Code(err error) string {
	for e := range statusCodeMap {
		if errors.Is(err, e) {
			return e.(*InternalError).Code
		}
	}
	return ErrCodeSystemError
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
