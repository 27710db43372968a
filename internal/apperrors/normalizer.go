package apperrors

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// Response is the normalized form of a failure
type Response struct {
	Status int    `json:"-"`
	Msg    string `json:"msg"`
}

// Classifier turns an error into a response, or reports that the error is
// not one it handles.
type Classifier func(err error) (Response, bool)

// PostgreSQL error codes mapped to a generic bad request
const (
	invalidTextRepresentationCode = "22P02"
	numericValueOutOfRangeCode    = "22003"
	undefinedColumnCode           = "42703"
	notNullViolationCode          = "23502"
	foreignKeyViolationCode       = "23503"
)

var badRequestCodes = map[pq.ErrorCode]bool{
	invalidTextRepresentationCode: true,
	numericValueOutOfRangeCode:    true,
	undefinedColumnCode:           true,
	notNullViolationCode:          true,
	foreignKeyViolationCode:       true,
}

// Normalizer tries its classifiers in order and falls back to a generic
// server error.
type Normalizer struct {
	classifiers []Classifier
	log         zerolog.Logger
}

// NewNormalizer creates the normalizer used by the API
func NewNormalizer(log zerolog.Logger) *Normalizer {
	return &Normalizer{
		classifiers: []Classifier{TypedClassifier, PostgresClassifier},
		log:         log.With().Str("component", "errors").Logger(),
	}
}

// Normalize maps err to a status and message safe to return to a client
func (n *Normalizer) Normalize(err error) Response {
	for _, classify := range n.classifiers {
		if resp, ok := classify(err); ok {
			return resp
		}
	}

	n.log.Error().Err(err).Msg("Unhandled error")
	return Response{Status: http.StatusInternalServerError, Msg: MsgServerError}
}

// TypedClassifier passes typed failures through unchanged
func TypedClassifier(err error) (Response, bool) {
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind == KindUnexpected {
		return Response{}, false
	}
	return Response{Status: appErr.Status(), Msg: appErr.Msg}, true
}

// PostgresClassifier maps type and constraint violations reported by the
// store to a generic bad request.
func PostgresClassifier(err error) (Response, bool) {
	if !IsConstraintViolation(err) {
		return Response{}, false
	}
	return Response{Status: http.StatusBadRequest, Msg: MsgBadRequest}, true
}

// IsConstraintViolation reports whether err is a PostgreSQL type or
// constraint violation.
func IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && badRequestCodes[pqErr.Code]
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key violation
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolationCode
}
