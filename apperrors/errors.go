package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an operation failure for callers and the HTTP layer.
type Kind string

const (
	KindValidation Kind = "VALIDATION_ERROR"
	KindDuplicate  Kind = "DUPLICATE_ERROR"
	KindNotFound   Kind = "NOT_FOUND"
	KindStorage    Kind = "STORAGE_ERROR"
	KindRender     Kind = "RENDER_ERROR"
)

var httpStatusByKind = map[Kind]int{
	KindValidation: http.StatusBadRequest,
	KindDuplicate:  http.StatusConflict,
	KindNotFound:   http.StatusNotFound,
	KindStorage:    http.StatusInternalServerError,
	KindRender:     http.StatusInternalServerError,
}

// Error carries a failure kind plus a human-readable reason.
type Error struct {
	kind    Kind
	message string
	cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Kind() Kind { return e.kind }

// Message is the user-facing reason without the wrapped cause.
func (e *Error) Message() string { return e.message }

// HTTPStatus maps the kind to a response status code.
func (e *Error) HTTPStatus() int {
	if status, ok := httpStatusByKind[e.kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// KindOf extracts the kind of err, or empty string for plain errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return ""
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// As unwraps err into *Error when possible.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
