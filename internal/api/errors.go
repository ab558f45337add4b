package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthenticated is returned for any 401 response. The unauthorized hook
// has already fired by the time a caller sees it; reacting to this error is
// about UI flow (return to login), not about clearing session state.
var ErrUnauthenticated = errors.New("unauthenticated: session is no longer valid")

// APIError is the normalized form of a non-2xx backend response.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// TransportError wraps a failure where no response was received at all
// (connection refused, DNS, timeout). It is never treated as a 401: a
// network blip must not log the user out.
type TransportError struct {
	Cause error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Cause)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *TransportError) Unwrap() error {
	return e.Cause
}

const (
	genericErrorMessage = "An unexpected error occurred"
	serverErrorMessage  = "Internal server error. Please try again later."
)

// errorPayload covers the shapes the backend is known to produce. Extra
// fields are ignored; a payload can carry both message and detail.
type errorPayload struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// normalizeErrorMessage folds the backend's heterogeneous error payloads
// (plain string, {message}, {detail}, mixed fields) into one human-readable
// message. 5xx responses always get the generic server message so internal
// details never surface in the UI.
func normalizeErrorMessage(status int, body []byte) string {
	if status >= 500 {
		return serverErrorMessage
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return genericErrorMessage
	}

	// A bare JSON string is a valid payload shape.
	var plain string
	if err := json.Unmarshal(body, &plain); err == nil && plain != "" {
		return plain
	}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Detail != "" {
			return payload.Detail
		}
	}

	return genericErrorMessage
}

// LoginErrorMessage normalizes a login rejection for inline display. A 4xx
// rejection without a usable payload reads as bad credentials rather than a
// generic failure.
func LoginErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < 500 && apiErr.Message == genericErrorMessage {
		return "Invalid credentials"
	}
	return ErrorMessage(err)
}

// ErrorMessage extracts the human-readable message from any error produced
// by the client, for inline display.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return genericErrorMessage
	}

	if errors.Is(err, ErrUnauthenticated) {
		return "Your session has expired. Please log in again."
	}

	return err.Error()
}
