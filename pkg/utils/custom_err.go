package utils

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest           = errors.New("bad request")
	ErrConflict             = errors.New("integrity conflict")
	ErrNotFound             = errors.New("not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrUnexpected           = errors.New("unexpected error")
)

// AppError carries a client-facing message; Kind is one of the sentinels above.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

func BadRequest(format string, args ...interface{}) error {
	return &AppError{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &AppError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return &AppError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func AuthenticationFailed(format string, args ...interface{}) error {
	return &AppError{Kind: ErrAuthenticationFailed, Message: fmt.Sprintf(format, args...)}
}

// Unexpected never exposes the cause; callers log it before wrapping.
func Unexpected(context string) error {
	return &AppError{Kind: ErrUnexpected, Message: "An unexpected error occurred while " + context}
}

// MessageOf returns the client-facing message of err, or "" for foreign errors.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
