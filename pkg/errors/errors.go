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

	// Repository and worktree errors
	ErrNotInRepo        ErrorCode = "NOT_IN_REPO"
	ErrNotWorktree      ErrorCode = "NOT_WORKTREE"
	ErrWorktreeExists   ErrorCode = "WORKTREE_EXISTS"
	ErrWorktreeNotFound ErrorCode = "WORKTREE_NOT_FOUND"
	ErrGitCommand       ErrorCode = "GIT_COMMAND"

	// Configuration errors
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"
	ErrConfigExists ErrorCode = "CONFIG_EXISTS"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrFileCopy      ErrorCode = "FILE_COPY"
	ErrIgnoreUpdate  ErrorCode = "IGNORE_UPDATE"

	// Shell integration errors
	ErrUnsupportedShell ErrorCode = "UNSUPPORTED_SHELL"
)

// SwtError represents a structured error with code and details
type SwtError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SwtError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SwtError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SwtError) Is(target error) bool {
	var targetErr *SwtError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SwtError with the given code and message
func New(code ErrorCode, message string) *SwtError {
	return &SwtError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SwtError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SwtError {
	return &SwtError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SwtError
func Wrap(err error, code ErrorCode, message string) *SwtError {
	if err == nil {
		return nil
	}
	return &SwtError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SwtError {
	if err == nil {
		return nil
	}
	return &SwtError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SwtError) WithDetail(key string, value interface{}) *SwtError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var swtErr *SwtError
	if errors.As(err, &swtErr) {
		return swtErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SwtError
func GetErrorCode(err error) ErrorCode {
	var swtErr *SwtError
	if errors.As(err, &swtErr) {
		return swtErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SwtError
func GetErrorDetails(err error) map[string]interface{} {
	var swtErr *SwtError
	if errors.As(err, &swtErr) {
		return swtErr.Details
	}
	return nil
}

// As is errors.As from the standard library, re-exported so callers need a single errors import
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
