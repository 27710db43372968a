// Package apperrors defines the typed failures produced by the request
// layer and the normalizer that turns any error into an HTTP response.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Messages shared across the API
const (
	MsgBadRequest   = "Bad Request"
	MsgServerError  = "Server Error"
	MsgPathNotFound = "Path not found"
)

// Kind classifies a failure
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindConstraint
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConstraint:
		return "constraint"
	default:
		return "unexpected"
	}
}

// Status returns the HTTP status code for the kind
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindConstraint:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a failure that carries its own status and message
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error
func (e *Error) Status() int {
	return e.Kind.Status()
}

// BadRequest creates a validation failure
func BadRequest(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NotFound creates a not-found failure
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// NotFoundIn creates the not-found failure reported when no row of table
// has column equal to value.
func NotFoundIn(table, column string, value any) *Error {
	return NotFound(fmt.Sprintf("No %s with %s: %v", table, column, value))
}

// MissingField creates the failure reported when a request body lacks a
// required property.
func MissingField(field string) *Error {
	return BadRequest(fmt.Sprintf("%s, body does not contain '%s' property", MsgBadRequest, field))
}

// Wrap attaches a kind and message to an underlying error
func Wrap(err error, kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// IsNotFound reports whether err is, or wraps, a not-found failure
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

// IsBadRequest reports whether err is, or wraps, a validation failure
func IsBadRequest(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindValidation
}
