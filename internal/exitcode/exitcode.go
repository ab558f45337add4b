// Package exitcode maps errors to process exit codes for consistent
// scripting against wmsctl.
package exitcode

import (
	stderrors "errors"
	"os"

	"github.com/wmstack/wmsctl/internal/api"
	"github.com/wmstack/wmsctl/internal/errors"
)

const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args)
	UsageError = 2

	// AuthError indicates a missing, expired, or rejected session
	AuthError = 3

	// ForbiddenError indicates the session's role does not grant access
	ForbiddenError = 4

	// NetworkError indicates the backend could not be reached
	NetworkError = 5

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with a code derived from the error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	if stderrors.Is(err, api.ErrUnauthenticated) {
		return AuthError
	}

	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		switch appErr.Code {
		case errors.ErrCodeAuthForbidden:
			return ForbiddenError
		case errors.ErrCodeAuthNotLoggedIn,
			errors.ErrCodeAuthSessionExpired,
			errors.ErrCodeAuthInvalidCredentials:
			return AuthError
		case errors.ErrCodeAPIUnreachable, errors.ErrCodeAPITimeout:
			return NetworkError
		case errors.ErrCodeConfigNotFound,
			errors.ErrCodeConfigInvalid,
			errors.ErrCodeConfigUnmarshal:
			return UsageError
		}
	}

	var transportErr *api.TransportError
	if stderrors.As(err, &transportErr) {
		return NetworkError
	}

	return GeneralError
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags, arguments, or configuration)"
	case AuthError:
		return "Authentication required"
	case ForbiddenError:
		return "Access denied for the current role"
	case NetworkError:
		return "Backend unreachable"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
