package toolcall

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a tool-call failure class.
type Code string

const (
	CodeInvalidRequest     Code = "InvalidRequest"
	CodeMalformedArguments Code = "MalformedArguments"
	CodeMissingField       Code = "MissingField"
	CodeInvalidDateFormat  Code = "InvalidDateFormat"
	CodeNotFound           Code = "NotFound"

	// CodeInternal covers failures outside the voice-platform taxonomy
	// (storage errors and the like).
	CodeInternal Code = "InternalError"
)

// Error is a tool-call failure with a caller-facing detail string.
type Error struct {
	Code   Code   `json:"error"`
	Detail string `json:"detail"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// HTTPStatus maps the error code to the status surfaced to the caller.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// Errorf builds a tool-call error with a formatted detail string.
func Errorf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// MissingField reports a required argument key that was absent.
func MissingField(key string) *Error {
	return Errorf(CodeMissingField, "missing required field %q", key)
}

// AsError extracts a tool-call error from err, if it carries one.
func AsError(err error) (*Error, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
