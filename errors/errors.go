// Package errors provides the coded error type shared by the oasmodel packages.
//
// Almost nothing in the document model fails: malformed values and unknown
// fields are dropped and unresolved references are left as written. The codes
// below cover the few paths that do fail.
//
//	_, err := model.Create("Widget")
//	if errors.Is(err, errors.ErrCodeUnsupportedType) {
//	    // programming error in the caller
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// ErrCodeUnsupportedType is returned when a reader, writer or factory is
	// asked for a document object type that is not registered.
	ErrCodeUnsupportedType Code = "UNSUPPORTED_TYPE"
	// ErrCodeReadOnly is carried by the panic raised when an unmodifiable
	// graph is mutated.
	ErrCodeReadOnly Code = "READ_ONLY"

	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix for *Error values
// and the plain error string otherwise.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ReadOnly builds the error carried by read-only panics.
func ReadOnly(what string) *Error {
	return New(ErrCodeReadOnly, "%s is unmodifiable", what)
}

// Recover converts a recovered read-only panic into an error. Any other panic
// value is re-raised.
//
//	func apply(doc *model.OpenAPI) (err error) {
//	    defer errors.Recover(&err)
//	    doc.SetInfo(nil)
//	    return nil
//	}
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*Error); ok && e.Code == ErrCodeReadOnly {
		*err = e
		return
	}
	panic(r)
}
