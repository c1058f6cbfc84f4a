package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the IO-facing layers. The rule engine itself never fails.
const (
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	ErrSourceRead   ErrorCode = "SOURCE_READ"
	ErrSourceDecode ErrorCode = "SOURCE_DECODE"
	ErrSettingsLoad ErrorCode = "SETTINGS_LOAD"
	ErrOutputWrite  ErrorCode = "OUTPUT_WRITE"
)

// BlockerError represents a structured error with code and details
type BlockerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BlockerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BlockerError) Unwrap() error {
	return e.Wrapped
}

// Is matches another BlockerError by code
func (e *BlockerError) Is(target error) bool {
	var targetErr *BlockerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BlockerError with the given code and message
func New(code ErrorCode, message string) *BlockerError {
	return &BlockerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BlockerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BlockerError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a BlockerError
func Wrap(err error, code ErrorCode, message string) *BlockerError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BlockerError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *BlockerError) WithDetail(key string, value interface{}) *BlockerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var blockerErr *BlockerError
	if errors.As(err, &blockerErr) {
		return blockerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BlockerError
func GetErrorCode(err error) ErrorCode {
	var blockerErr *BlockerError
	if errors.As(err, &blockerErr) {
		return blockerErr.Code
	}
	return ErrUnknown
}
