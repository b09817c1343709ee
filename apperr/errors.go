package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an application error for HTTP mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindForbidden
	KindUploadRequired
	KindUpstream
	KindRateLimited
)

// Error is the application-wide error type. Validation errors carry the
// full list of offending fields so callers see every problem at once.
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidation builds a validation error enumerating every missing or
// malformed field.
func NewValidation(fields ...string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "validation failed: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

func NewNotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func NewForbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "forbidden"}
}

func NewUploadRequired(field string) *Error {
	return &Error{Kind: KindUploadRequired, Message: field + " file is required"}
}

func NewUpstream(op string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: op + " failed", Err: err}
}

func NewRateLimited() *Error {
	return &Error{Kind: KindRateLimited, Message: "too many requests, please try again later"}
}

// HTTPStatus maps an error to its HTTP status code. Unknown errors map
// to 500.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindUploadRequired:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUpstream:
		return http.StatusBadGateway
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// FieldsOf returns the offending field list for validation errors, nil
// otherwise.
func FieldsOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
