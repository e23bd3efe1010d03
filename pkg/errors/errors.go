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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Run-wide configuration errors
	ErrNotConfigured ErrorCode = "NOT_CONFIGURED"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrToolNotFound  ErrorCode = "TOOL_NOT_FOUND"

	// Project discovery errors
	ErrProjectDiscovery ErrorCode = "PROJECT_DISCOVERY"

	// Lock file errors
	ErrLockFileNotFound ErrorCode = "LOCKFILE_NOT_FOUND"
	ErrLockFileParse    ErrorCode = "LOCKFILE_PARSE"
	ErrVersionFormat    ErrorCode = "VERSION_FORMAT"

	// Packaging tool errors
	ErrToolInvocation ErrorCode = "TOOL_INVOCATION"

	// Manifest errors
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"
)

// runFatal lists the codes that stop a run before any project is processed.
var runFatal = map[ErrorCode]bool{
	ErrNotConfigured:    true,
	ErrConfigParse:      true,
	ErrToolNotFound:     true,
	ErrProjectDiscovery: true,
}

// NuspecError represents a structured error with code and details
type NuspecError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NuspecError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NuspecError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NuspecError) Is(target error) bool {
	var targetErr *NuspecError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NuspecError with the given code and message
func New(code ErrorCode, message string) *NuspecError {
	return &NuspecError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NuspecError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NuspecError {
	return &NuspecError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a NuspecError
func Wrap(err error, code ErrorCode, message string) *NuspecError {
	if err == nil {
		return nil
	}
	return &NuspecError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NuspecError {
	if err == nil {
		return nil
	}
	return &NuspecError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NuspecError) WithDetail(key string, value interface{}) *NuspecError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *NuspecError) WithDetails(details map[string]interface{}) *NuspecError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var nuspecErr *NuspecError
	if errors.As(err, &nuspecErr) {
		return nuspecErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a NuspecError
func GetErrorCode(err error) ErrorCode {
	var nuspecErr *NuspecError
	if errors.As(err, &nuspecErr) {
		return nuspecErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a NuspecError
func GetErrorDetails(err error) map[string]interface{} {
	var nuspecErr *NuspecError
	if errors.As(err, &nuspecErr) {
		return nuspecErr.Details
	}
	return nil
}

// IsRunFatal reports whether err aborts the whole run rather than a single
// project. Errors without a code are treated as per-project failures.
func IsRunFatal(err error) bool {
	return runFatal[GetErrorCode(err)]
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
