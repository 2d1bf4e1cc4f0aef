package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors - any of these aborts the run before the
	// session starts
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule errors
	ErrRuleInvalid ErrorCode = "RULE_INVALID"

	// Session errors
	ErrSourceAccess ErrorCode = "SOURCE_ACCESS"
	ErrLockHeld     ErrorCode = "LOCK_HELD"

	// FileSystem errors
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrFileMove    ErrorCode = "FILE_MOVE"
	ErrReportWrite ErrorCode = "REPORT_WRITE"
)

// FilesortError represents a structured error with code and details
type FilesortError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FilesortError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FilesortError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FilesortError) Is(target error) bool {
	var targetErr *FilesortError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FilesortError with the given code and message
func New(code ErrorCode, message string) *FilesortError {
	return &FilesortError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FilesortError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FilesortError {
	return &FilesortError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FilesortError
func Wrap(err error, code ErrorCode, message string) *FilesortError {
	if err == nil {
		return nil
	}
	return &FilesortError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FilesortError {
	if err == nil {
		return nil
	}
	return &FilesortError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FilesortError) WithDetail(key string, value interface{}) *FilesortError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fsErr *FilesortError
	if errors.As(err, &fsErr) {
		return fsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a
// FilesortError
func GetErrorCode(err error) ErrorCode {
	var fsErr *FilesortError
	if errors.As(err, &fsErr) {
		return fsErr.Code
	}
	return ErrUnknown
}

// IsConfigError reports whether the error is fatal to the whole run, i.e.
// carries one of the configuration error codes.
func IsConfigError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigLoad, ErrConfigParse, ErrConfigValid, ErrRuleInvalid:
		return true
	}
	return false
}
