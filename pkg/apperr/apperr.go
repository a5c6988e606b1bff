// Package apperr is the shared failure vocabulary of the application layer.
// Errors carry a kind, an HTTP-style status and an optional cause so the
// transport can translate them without string matching.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindAuthentication
	KindAuthorization
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	default:
		return "internal"
	}
}

func (k Kind) status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error is the application error value. Cause preserves the underlying
// failure for diagnostics and is reachable through errors.Unwrap.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Status: kind.status(), Cause: cause}
}

// Validation marks a client-input fault (400).
func Validation(message string) *Error {
	return newError(KindValidation, message, nil)
}

// NotFound marks a missing resource (404).
func NotFound(message string) *Error {
	return newError(KindNotFound, message, nil)
}

// Authentication marks missing or invalid credentials (401).
func Authentication(message string) *Error {
	return newError(KindAuthentication, message, nil)
}

// Authorization marks insufficient permissions (403).
func Authorization(message string) *Error {
	return newError(KindAuthorization, message, nil)
}

// Internal marks an unexpected failure (500) and keeps the cause.
func Internal(message string, cause error) *Error {
	return newError(KindInternal, message, cause)
}

// Wrap turns an unexpected error into an internal Error exactly once: a
// recognized application error passes through unchanged so kinds are never
// buried under wrapping chains.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return Internal(message, err)
}

// KindOf reports the kind of err, defaulting to internal for foreign errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// StatusOf reports the HTTP-style status of err.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

func IsValidation(err error) bool     { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool       { return KindOf(err) == KindNotFound }
func IsAuthentication(err error) bool { return KindOf(err) == KindAuthentication }
func IsAuthorization(err error) bool  { return KindOf(err) == KindAuthorization }
