// Package apperror defines the closed set of failures a request can end with
// and the HTTP status each of them maps to.
package apperror

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies an Error
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Status maps a kind to its HTTP status code
func Status(k Kind) int {
	switch k {
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified request failure.
// Details holds the individual messages of a validation failure.
type Error struct {
	Kind    Kind
	Message string
	Details []string

	cause error
}

func (e *Error) Error() string {
	if len(e.Details) > 0 {
		return strings.Join(e.Details, "; ")
	}
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Status returns the HTTP status code for the error
func (e *Error) Status() int {
	return Status(e.Kind)
}

// Body returns the value of the "message" field: the list of messages for
// validation failures, the message string otherwise.
func (e *Error) Body() any {
	if e.Kind == KindValidation {
		return e.Details
	}
	return e.Message
}

// BadRequest reports a malformed or incomplete request
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Validation reports one or more violated field rules
func Validation(messages ...string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Details: messages}
}

// Unauthorized reports missing or invalid credentials
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden reports an authenticated caller acting on something it does not own
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound reports a missing resource
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps an unexpected failure. The cause is logged, never sent to clients.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal Server Error", cause: err}
}

// As classifies any error; unclassified errors become Internal
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
