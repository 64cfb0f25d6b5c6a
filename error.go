package xwrap

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EFETCH    = "fetch"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the code and message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("xwrap error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// FetchError reports a remote resource that answered with a non-success status.
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("HTTP %d (%s) for %s", e.StatusCode, e.Status, e.URL)
	}
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return EFETCH
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Error()
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
