// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-pool.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrNotSupported      = errors.New("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeResourceExhausted
	ErrCodeNotSupported
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeResourceExhausted:
		return "resource_exhausted"
	case ErrCodeNotSupported:
		return "not_supported"
	default:
		return "internal"
	}
}

// Error represents a structured error with code, context and an optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) != 0 {
		msg = fmt.Sprintf("%s (context: %+v)", msg, e.Context)
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel matching e.Code.
func (e *Error) Is(target error) bool {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return target == ErrInvalidArgument
	case ErrCodeResourceExhausted:
		return target == ErrResourceExhausted
	case ErrCodeNotSupported:
		return target == ErrNotSupported
	}
	return false
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithCause records the underlying failure.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}
