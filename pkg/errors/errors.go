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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Gamebox errors
	ErrGameboxNotFound      ErrorCode = "GAMEBOX_NOT_FOUND"
	ErrGameboxAccess        ErrorCode = "GAMEBOX_ACCESS"
	ErrTargetOutsideGamebox ErrorCode = "TARGET_OUTSIDE_GAMEBOX"
	ErrManifestCorrupt      ErrorCode = "MANIFEST_CORRUPT"
	ErrIndexOutOfRange      ErrorCode = "INDEX_OUT_OF_RANGE"

	// Documentation errors
	ErrFolderCreate     ErrorCode = "FOLDER_CREATE"
	ErrNotInDocsFolder  ErrorCode = "NOT_IN_DOCS_FOLDER"
	ErrDocsImportFailed ErrorCode = "DOCS_IMPORT_FAILED"

	// FileSystem errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileCopy      ErrorCode = "FILE_COPY"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrTrashFailed   ErrorCode = "TRASH_FAILED"
)

// GameboxError represents a structured error with code and details
type GameboxError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GameboxError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GameboxError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GameboxError) Is(target error) bool {
	var targetErr *GameboxError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GameboxError with the given code and message
func New(code ErrorCode, message string) *GameboxError {
	return &GameboxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GameboxError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GameboxError {
	return &GameboxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GameboxError
func Wrap(err error, code ErrorCode, message string) *GameboxError {
	if err == nil {
		return nil
	}
	return &GameboxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GameboxError {
	if err == nil {
		return nil
	}
	return &GameboxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GameboxError) WithDetail(key string, value interface{}) *GameboxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gbErr *GameboxError
	if errors.As(err, &gbErr) {
		return gbErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GameboxError
func GetErrorCode(err error) ErrorCode {
	var gbErr *GameboxError
	if errors.As(err, &gbErr) {
		return gbErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GameboxError
func GetErrorDetails(err error) map[string]interface{} {
	var gbErr *GameboxError
	if errors.As(err, &gbErr) {
		return gbErr.Details
	}
	return nil
}
