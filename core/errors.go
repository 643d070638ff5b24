// Package core has types and functions shared by all layout components.
package core

import (
	"errors"
	"fmt"
)

// Error codes. Layout failures abort the whole layout call; callers
// distinguish them by code.
const (
	NOERROR      int = 0
	EMISSING     int = 122 // resource does not exist
	EINVALID     int = 123 // validation failed
	EINTERNAL    int = 125 // internal error
	EMEASURE     int = 130 // font backend failed to measure text
	EUNSUPPORTED int = 131 // content type not supported by layout
	EDEPTH       int = 132 // nesting of boxes exceeds limit
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	case EMEASURE:
		return "measurement failure"
	case EUNSUPPORTED:
		return "unsupported content"
	case EDEPTH:
		return "nesting too deep"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// coreError carries a code and a user message. cause is nil for errors
// created by Error.
type coreError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = coreError{}

func (e coreError) Unwrap() error {
	return e.cause
}

func (e coreError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%d] %s: %s", e.code, errorText(e.code), e.msg)
	}
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.cause)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{code: code, msg: fmt.Sprintf(format, v...)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message. If err is nil, WrapError behaves like Error.
func WrapError(err error, code int, format string, v ...interface{}) error {
	return coreError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// For errors without a user message the text for its code is returned.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}
