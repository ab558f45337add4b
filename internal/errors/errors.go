package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthInvalidCredentials ErrorCode = "AUTH-001"
	ErrCodeAuthSessionExpired     ErrorCode = "AUTH-002"
	ErrCodeAuthNotLoggedIn        ErrorCode = "AUTH-003"
	ErrCodeAuthStoreCorrupt       ErrorCode = "AUTH-004"
	ErrCodeAuthForbidden          ErrorCode = "AUTH-005"

	// API errors (API-001 to API-099)
	ErrCodeAPIUnreachable ErrorCode = "API-001"
	ErrCodeAPIServer      ErrorCode = "API-002"
	ErrCodeAPIBadRequest  ErrorCode = "API-003"
	ErrCodeAPITimeout     ErrorCode = "API-004"
	ErrCodeAPIDecode      ErrorCode = "API-005"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigNotFound  ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid   ErrorCode = "CONFIG-002"
	ErrCodeConfigUnmarshal ErrorCode = "CONFIG-003"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
)

// Error represents an enhanced error with code, suggestions, and documentation
type Error struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new Error wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *Error) WithSuggestions(suggestions ...string) *Error {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates an error for commands that need a session
func NewNotLoggedInError() *Error {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'wmsctl login' to authenticate").
		WithSuggestion("Check 'wmsctl whoami' for session status")
}

// NewSessionExpiredError creates an error for a rejected stored token
func NewSessionExpiredError() *Error {
	return New(ErrCodeAuthSessionExpired, "session expired or token invalid").
		WithSuggestion("Run 'wmsctl login' to re-authenticate")
}

// NewForbiddenError creates an error for a role-gated command
func NewForbiddenError(section string) *Error {
	return New(ErrCodeAuthForbidden, fmt.Sprintf("your role does not grant access to %s", section)).
		WithSuggestion("Contact an administrator if you need access")
}

// NewConfigNotFoundError creates a config file not found error
func NewConfigNotFoundError(path string) *Error {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithSuggestion("Create a config file or rely on the built-in defaults").
		WithSuggestion("Set WMSCTL_API_URL to point at your backend")
}

// NewConfigUnmarshalError creates a config parse error
func NewConfigUnmarshalError(path string, cause error) *Error {
	return Wrap(ErrCodeConfigUnmarshal, fmt.Sprintf("failed to parse config file: %s", path), cause).
		WithSuggestion("Check the YAML syntax of the file")
}

// NewFileWriteError creates a file write error
func NewFileWriteError(path string, cause error) *Error {
	return Wrap(ErrCodeFileWriteFailed, fmt.Sprintf("failed to write file: %s", path), cause).
		WithSuggestion("Check directory permissions")
}
