package apperr

import (
	"errors"
	"net/http"
)

// Kind identifies a failure condition in the domain error taxonomy.
// The string value is the wire-level "type" field of error responses.
type Kind string

const (
	MissingMandatoryProperty Kind = "MISSING_MANDATORY_PROPERTY"
	DuplicateProperty        Kind = "DUPLICATE_PROPERTY"
	UserNotFound             Kind = "USER_NOT_FOUND"
	PostNotFound             Kind = "POST_NOT_FOUND"
	LoginFail                Kind = "LOGIN_FAIL"
	InvalidPassword          Kind = "INVALID_PASSWORD"
	MismatchPassword         Kind = "MISMATCH_PASSWORD"
	UnauthorizedUser         Kind = "UNAUTHORIZED_USER"
	InvalidToken             Kind = "INVALID_TOKEN"
)

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case PostNotFound:
		return http.StatusNotFound
	case UnauthorizedUser, InvalidToken:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// Error is a typed domain failure. It is created at the point of failure,
// propagated unchanged, and translated to status + body once at the boundary.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// As unwraps err into an *Error if it carries one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err is a domain failure of the given kind.
func Is(err error, kind Kind) bool {
	if e, ok := As(err); ok {
		return e.Kind == kind
	}
	return false
}
