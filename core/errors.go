package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// RequestError is returned when the academic backend answers with a non-2xx status.
// Body holds the response body verbatim.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func NewRequestError(method, path string, code int, body string) error {
	return &RequestError{Method: method, Path: path, StatusCode: code, Body: body}
}

func (err RequestError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", err.Method, err.Path, err.StatusCode, err.Body)
}

// TransportError is returned when the academic backend could not be reached at all.
type TransportError struct {
	Err error
}

func NewTransportError(err error) error {
	return &TransportError{Err: err}
}

func (err TransportError) Error() string {
	return "backend unreachable: " + err.Err.Error()
}

func (err TransportError) Unwrap() error { return err.Err }

// AsRequestError returns the *RequestError at the root of err, if any.
func AsRequestError(err error) (*RequestError, bool) {
	rErr, ok := errors.Cause(err).(*RequestError)
	return rErr, ok
}

func IsTransport(err error) bool {
	_, ok := errors.Cause(err).(*TransportError)
	return ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
