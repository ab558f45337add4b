package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeAuthNotLoggedIn, "test error message")

	if err.Code != ErrCodeAuthNotLoggedIn {
		t.Errorf("expected code %s, got %s", ErrCodeAuthNotLoggedIn, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeFileReadFailed, "failed to read file", cause)

	if err.Code != ErrCodeFileReadFailed {
		t.Errorf("expected code %s, got %s", ErrCodeFileReadFailed, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeConfigInvalid, "invalid config"),
			wantCode: "CONFIG-002",
			wantMsg:  "invalid config",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeFileReadFailed, "read failed", fmt.Errorf("permission denied")),
			wantCode: "IO-002",
			wantMsg:  "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain message %s, got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestSuggestions(t *testing.T) {
	err := New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'wmsctl login' to authenticate").
		WithSuggestions("another hint", "and one more")

	if len(err.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(err.Suggestions))
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "Suggestions:") {
		t.Errorf("error string should contain suggestions section, got: %s", errStr)
	}
	if !strings.Contains(errStr, "wmsctl login") {
		t.Errorf("error string should contain first suggestion, got: %s", errStr)
	}
}

func TestCommonConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		code ErrorCode
	}{
		{"not logged in", NewNotLoggedInError(), ErrCodeAuthNotLoggedIn},
		{"session expired", NewSessionExpiredError(), ErrCodeAuthSessionExpired},
		{"forbidden", NewForbiddenError("settings"), ErrCodeAuthForbidden},
		{"config not found", NewConfigNotFoundError("/tmp/nope.yaml"), ErrCodeConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
			}
			if len(tt.err.Suggestions) == 0 {
				t.Errorf("expected suggestions to be present")
			}
		})
	}
}
