package auth

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures that are reported to the client.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation" // missing or malformed input
	KindConflict   ErrorKind = "conflict"   // username or email already taken
	KindAuth       ErrorKind = "auth"       // bad credentials
)

// Error is a client-facing failure. Message is safe to return verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode maps the kind to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation, KindConflict, KindAuth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrFieldsRequired   = &Error{Kind: KindValidation, Message: "All fields are required"}
	ErrEmailInvalid     = &Error{Kind: KindValidation, Message: "Invalid email format"}
	ErrPasswordTooShort = &Error{Kind: KindValidation, Message: "Password must be at least 6 characters long"}
	ErrPasswordTooLong  = &Error{Kind: KindValidation, Message: "Password must be at most 72 bytes long"}
	ErrUsernameTaken    = &Error{Kind: KindConflict, Message: "Username is already taken"}
	ErrEmailTaken       = &Error{Kind: KindConflict, Message: "Email is already taken"}
	ErrInvalidUsername  = &Error{Kind: KindAuth, Message: "Invalid username"}
	ErrInvalidPassword  = &Error{Kind: KindAuth, Message: "Invalid password"}
)

// Token verification failures. These never reach the client as-is.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// AsError extracts a client-facing *Error from err.
func AsError(err error) (*Error, bool) {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}
