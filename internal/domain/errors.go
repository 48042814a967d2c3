package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a domain error for transport mapping.
type ErrorCode string

const (
	CodeValidation     ErrorCode = "VALIDATION_ERROR"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeStorageFailure ErrorCode = "STORAGE_FAILURE"
)

// Error is the error type returned by domain and application code.
// Anything else bubbling out of the storage layer is treated as a
// storage failure by the transport boundary.
type Error struct {
	Code    ErrorCode
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewValidationError creates an error for missing or malformed input.
// No state has been persisted when this is returned.
func NewValidationError(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// NewNotFoundError creates an error for a missing resource.
func NewNotFoundError(resource, id string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s not found", resource, id),
	}
}

// NewStorageError wraps a persistence engine failure.
func NewStorageError(op string, cause error) *Error {
	return &Error{
		Code:    CodeStorageFailure,
		Message: fmt.Sprintf("storage failure during %s", op),
		cause:   cause,
	}
}

// CodeOf returns the error code carried by err, or CodeStorageFailure
// when err is not a domain error.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeStorageFailure
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return CodeOf(err) == CodeValidation
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}
