package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for the HTTP layer. Services wrap one of the
// sentinel errors below; handlers map the kind to a status code and return
// the error's message, never the underlying driver/runtime detail.
type Kind int

const (
	Validation Kind = iota
	Unauthenticated
	Forbidden
	NotFound
	Unavailable
	Internal
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap keeps the internal cause for logging while exposing only msg to
// clients.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

// KindOf returns the kind of err, or Internal for unclassified errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.kind
	}
	return Internal
}

// Status maps an error to its HTTP status per the taxonomy.
func Status(err error) int {
	switch KindOf(err) {
	case Validation:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Unavailable, Internal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe text for err. Unclassified errors get a
// generic message so internal detail never leaks to the response body.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.msg
	}
	return "internal server error"
}

// Shared sentinels used across services.
var (
	ErrInvalidCredentials = New(Unauthenticated, "invalid username or password")
	ErrUsernameTaken      = New(Validation, "username already exists")
	ErrEmailTaken         = New(Validation, "email already registered")
	ErrUserNotFound       = New(Unauthenticated, "user not found")
	ErrInvalidResetToken  = New(Validation, "invalid or expired token")
	ErrScoringUnavailable = New(Unavailable, "scoring model is not loaded")
	ErrEmptyDataset       = New(Validation, "dataset is empty")
	ErrBatchNotFound      = New(NotFound, "batch not found")
	ErrNotBatchOwner      = New(Forbidden, "access denied")
)
