// Package apperr defines the error taxonomy shared by every gateway.
//
// Repositories and services return *Error values (or wrap them); the
// response package turns them into HTTP status codes in one place.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the class of a failure.
type Code string

const (
	CodeValidation Code = "VALIDATION"
	CodeNotFound   Code = "NOT_FOUND"
	CodeConnection Code = "CONNECTION"
	CodeInternal   Code = "INTERNAL"
)

// HTTPStatus maps a code to its status. Only validation and not-found get
// their own; everything else is a 500.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a coded error with a client-facing message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error carrying the same code, so the sentinels below work
// with errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the status for this error's code.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

var (
	ErrValidation = &Error{Code: CodeValidation, Message: "validation error"}
	ErrNotFound   = &Error{Code: CodeNotFound, Message: "not found"}
	ErrConnection = &Error{Code: CodeConnection, Message: "Koneksi database gagal"}
)

func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// Connection reports that the store could not be reached.
func Connection(cause error) *Error {
	return &Error{Code: CodeConnection, Message: ErrConnection.Message, cause: cause}
}

// Internal reports an unexpected failure. Only msg reaches the client.
func Internal(msg string, cause error) *Error {
	return &Error{Code: CodeInternal, Message: msg, cause: cause}
}

// StatusOf returns the HTTP status for err, 500 when err carries no code.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}
