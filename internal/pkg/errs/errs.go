/*
Package errs provides the portal's error type and application-level error code constants.

This file defines CustomError, which implements the error interface and carries a business code,
a user-facing message, the HTTP status used by the portal and, optionally, the underlying cause.
*/
package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"innoevent/internal/pkg/logx"
)

// Kind classifies an error by where it originated.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindRejected
	KindUnauthenticated
	KindTransport
)

// CustomError is the error structure used throughout the portal.
type CustomError struct {
	// Code is the business error code (see constants definition).
	Code int

	// Message is the user-facing description shown as a notice.
	Message string

	// Status is the HTTP status the portal answers with for this error.
	Status int

	// Err is the underlying cause, kept for logs and never shown to users.
	Err error
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Error Code %d (HTTP %d): %s: %v", e.Code, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Kind reports the origin class of the error derived from its code range.
func (e *CustomError) Kind() Kind {
	switch e.Code / 1000 {
	case 1:
		return KindValidation
	case 2:
		return KindRejected
	case 3:
		if e.Code == ErrAuthRequired {
			return KindUnauthenticated
		}
		return KindValidation
	case 4:
		return KindTransport
	default:
		return KindUnknown
	}
}

// NewError builds a *CustomError from a predefined code.
// Printf-style details fill the message template. An unknown code yields ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]
	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)
		templateErr = errorMap[ErrUnknown]
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusOK
	}

	if len(details) > 0 {
		if strings.Contains(customErr.Message, "%") {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			logx.Warn(
				"Details provided for error, but message template has no formatting placeholders. Details ignored.",
				"code", code,
			)
		}
	}

	return &customErr
}

// Wrap builds a *CustomError from a code and attaches cause as the underlying error.
func Wrap(code int, cause error, details ...any) *CustomError {
	customErr := NewError(code, details...)
	customErr.Err = cause
	return customErr
}

// From normalizes any error into a *CustomError. Errors that are not already
// a *CustomError become ErrUnknown with the original kept as cause. nil stays nil.
func From(err error) *CustomError {
	if err == nil {
		return nil
	}

	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}

	logx.Error(err, "Unclassified error converted to ErrUnknown")
	return Wrap(ErrUnknown, err)
}

// Is reports whether err is a *CustomError carrying the given code.
func Is(err error, code int) bool {
	var customErr *CustomError
	return errors.As(err, &customErr) && customErr.Code == code
}
