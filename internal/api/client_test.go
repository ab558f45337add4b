package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedToken string

func (t fixedToken) Token() string { return string(t) }

func TestClientSendsAuthHeaderAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(User{Username: "amara"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetTokenSource(fixedToken("tok-123"))

	_, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Token tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(LoginResponse{Token: "tok-123"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetTokenSource(fixedToken(""))

	_, err := client.Login(context.Background(), Credentials{Username: "amara", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientUnauthorizedFiresHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid token."})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	hookFired := false
	client.SetUnauthorizedHook(func() { hookFired = true })

	_, err := client.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.True(t, hookFired, "every 401 goes through the hook")
}

func TestClientErrorNormalization(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"bare string", 400, `"Quantity must be positive"`, "Quantity must be positive"},
		{"message field", 400, `{"message":"Item already exists"}`, "Item already exists"},
		{"detail field", 403, `{"detail":"You do not have permission to perform this action."}`, "You do not have permission to perform this action."},
		{"message wins over detail", 400, `{"message":"first","detail":"second"}`, "first"},
		{"empty body", 404, ``, "An unexpected error occurred"},
		{"unrecognized shape", 400, `{"errors":["a","b"]}`, "An unexpected error occurred"},
		{"server error hides details", 500, `{"message":"stack trace here"}`, "Internal server error. Please try again later."},
		{"bad gateway", 502, `<html>nginx</html>`, "Internal server error. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			client.retryAttempts = 1

			err := client.post(context.Background(), "/inventory/items/", nil, nil)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.message, ErrorMessage(err))
		})
	}
}

func TestClientTransportErrorIsNotUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	client.retryAttempts = 1
	hookFired := false
	client.SetUnauthorizedHook(func() { hookFired = true })

	err := client.post(context.Background(), "/inventory/items/", nil, nil)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
	assert.False(t, hookFired, "a network failure must not log the user out")
	assert.Equal(t, "An unexpected error occurred", ErrorMessage(err))
}

func TestClientRetriesTransientGet(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode([]Item{{ID: "i-1", Name: "Pallet jack"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	items, err := client.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.GetItem(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "4xx responses are final")
}

func TestClientDoesNotRetryWrites(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.CreateItem(context.Background(), Item{Name: "Pallet jack"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "a retried write could duplicate an order")
}

func TestClientTokenReadFreshPerRequest(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(User{Username: "amara"})
	}))
	defer server.Close()

	token := "first"
	client := NewClient(server.URL)
	client.SetTokenSource(tokenFunc(func() string { return token }))

	_, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Token first", gotAuth)

	token = "second"
	_, err = client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Token second", gotAuth)
}

type tokenFunc func() string

func (f tokenFunc) Token() string { return f() }

func TestLoginErrorMessage(t *testing.T) {
	// A shapeless 4xx rejection reads as bad credentials.
	assert.Equal(t, "Invalid credentials",
		LoginErrorMessage(&APIError{StatusCode: 400, Message: "An unexpected error occurred"}))
	// A backend-provided message passes through verbatim.
	assert.Equal(t, "No active account found with the given credentials",
		LoginErrorMessage(&APIError{StatusCode: 400, Message: "No active account found with the given credentials"}))
	// Server failures are not credential problems.
	assert.Equal(t, "Internal server error. Please try again later.",
		LoginErrorMessage(&APIError{StatusCode: 502, Message: "Internal server error. Please try again later."}))
}

func TestErrorMessageForUnauthenticated(t *testing.T) {
	assert.Equal(t, "Your session has expired. Please log in again.", ErrorMessage(ErrUnauthenticated))
	assert.Empty(t, ErrorMessage(nil))
}
