// Package apperr is the service-wide error taxonomy. Handlers attach an
// *Error to the gin context and the ErrorHandler middleware renders it;
// anything else that bubbles up is treated as an internal error.
package apperr

import "net/http"

type Error struct {
	status  int
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus is the status code the error renders with.
func (e *Error) HTTPStatus() int { return e.status }

// Message is the client-facing text. Internal causes are never included.
func (e *Error) Message() string { return e.message }

// New builds an error with an explicit status for cases outside the standard
// taxonomy.
func New(message string, status int) *Error {
	return &Error{status: status, message: message}
}

// Unauthenticated: no or invalid session.
func Unauthenticated(message string) *Error {
	return &Error{status: http.StatusUnauthorized, message: message}
}

// Validation: malformed identifier or missing required field. Raised before
// any store access.
func Validation(message string) *Error {
	return &Error{status: http.StatusBadRequest, message: message}
}

// NotFound: a referenced user or photo does not exist.
func NotFound(message string) *Error {
	return &Error{status: http.StatusNotFound, message: message}
}

// Conflict: a toggle was applied while the target state already held.
func Conflict(message string) *Error {
	return &Error{status: http.StatusForbidden, message: message}
}

// Internal wraps a store or other unexpected failure. The cause is logged at
// the rendering boundary and never leaked to the client.
func Internal(message string, cause error) *Error {
	return &Error{status: http.StatusInternalServerError, message: message, cause: cause}
}
