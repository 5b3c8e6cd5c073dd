package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeBind indicates the redirect listener port could not be bound.
	ErrCodeBind ErrorCode = "bind"
	// ErrCodeCancelled indicates the login attempt was cancelled before a code arrived.
	ErrCodeCancelled ErrorCode = "cancelled"
	// ErrCodeExchange indicates the token endpoint rejected the code or the call failed.
	ErrCodeExchange ErrorCode = "exchange"
	// ErrCodeIdentityFetch indicates the profile lookup failed.
	ErrCodeIdentityFetch ErrorCode = "identity_fetch"
	// ErrCodeCommand indicates a shell command returned non-zero or could not spawn.
	ErrCodeCommand ErrorCode = "command"
	// ErrCodeLookup indicates a hardware inventory query failed.
	ErrCodeLookup ErrorCode = "lookup"
	// ErrCodeNotFound indicates a named resource (e.g. a tweak) does not exist.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeTimeout indicates a bounded wait expired.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured application error with a code, message,
// and optional cause. It supports error wrapping and unwrapping for use
// with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates an AppError with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Bind creates a new bind error.
func Bind(message string) *AppError { return New(ErrCodeBind, message) }

// Cancelled creates a new cancelled error.
func Cancelled(message string) *AppError { return New(ErrCodeCancelled, message) }

// NotFound creates a new not-found error.
func NotFound(message string) *AppError { return New(ErrCodeNotFound, message) }

// Validation creates a new validation error.
func Validation(message string) *AppError { return New(ErrCodeValidation, message) }

// Timeout creates a new timeout error.
func Timeout(message string) *AppError { return New(ErrCodeTimeout, message) }

// Internal creates a new internal error.
func Internal(message string) *AppError { return New(ErrCodeInternal, message) }

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsBind checks if an error is a bind error.
func IsBind(err error) bool { return isCode(err, ErrCodeBind) }

// IsCancelled checks if an error is a cancelled error.
func IsCancelled(err error) bool { return isCode(err, ErrCodeCancelled) }

// IsExchange checks if an error is an exchange error.
func IsExchange(err error) bool { return isCode(err, ErrCodeExchange) }

// IsIdentityFetch checks if an error is an identity-fetch error.
func IsIdentityFetch(err error) bool { return isCode(err, ErrCodeIdentityFetch) }

// IsCommand checks if an error is a command error.
func IsCommand(err error) bool { return isCode(err, ErrCodeCommand) }

// IsLookup checks if an error is a lookup error.
func IsLookup(err error) bool { return isCode(err, ErrCodeLookup) }

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool { return isCode(err, ErrCodeValidation) }

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool { return isCode(err, ErrCodeTimeout) }

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
