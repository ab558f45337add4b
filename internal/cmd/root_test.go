package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmstack/wmsctl/internal/api"
	"github.com/wmstack/wmsctl/internal/errors"
	"github.com/wmstack/wmsctl/internal/exitcode"
)

func fakeBackend(t *testing.T, role string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/auth/token/login/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.LoginResponse{
			Token: "tok-123",
			User:  &api.User{Username: "amara", Role: role, IsActive: true},
		})
	})
	mux.HandleFunc("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(api.User{Username: "amara", Role: role, IsActive: true})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func setupEnv(t *testing.T, backendURL string) {
	t.Helper()
	t.Setenv("WMSCTL_API_URL", backendURL)
	t.Setenv("WMSCTL_STATE_DIR", t.TempDir())
}

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{
		"login", "logout", "whoami", "console", "version",
		"inventory", "procurement", "sales", "reports", "settings",
	} {
		assert.Contains(t, names, want)
	}
}

func TestAppWithoutSession(t *testing.T) {
	server := fakeBackend(t, "admin")
	setupEnv(t, server.URL)

	_, err := app(context.Background())
	require.Error(t, err)

	var appErr *errors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeAuthNotLoggedIn, appErr.Code)
	assert.Equal(t, exitcode.AuthError, exitcode.DetermineExitCode(err))
}

func TestAppWithStoredSession(t *testing.T) {
	server := fakeBackend(t, "warehouse_manager")
	setupEnv(t, server.URL)

	// Log in once, then a fresh invocation picks the session up from disk.
	first, err := newApp()
	require.NoError(t, err)
	require.NoError(t, first.Manager.Login(context.Background(), api.Credentials{
		Username: "amara", Password: "pw",
	}))

	a, err := app(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "amara", a.User().Username)
	assert.Equal(t, "warehouse_manager", a.User().Role)
}

func TestRequireEntry(t *testing.T) {
	server := fakeBackend(t, "team_lead")
	setupEnv(t, server.URL)

	first, err := newApp()
	require.NoError(t, err)
	require.NoError(t, first.Manager.Login(context.Background(), api.Credentials{
		Username: "amara", Password: "pw",
	}))

	a, err := app(context.Background())
	require.NoError(t, err)

	assert.NoError(t, a.requireEntry("inventory.items"))
	assert.NoError(t, a.requireEntry("inventory.distribution"))

	for _, denied := range []string{
		"inventory.categories", "procurement.requests", "sales.orders",
		"reports.sales", "settings.company", "no.such.entry",
	} {
		err := a.requireEntry(denied)
		require.Error(t, err, denied)
		assert.Equal(t, exitcode.ForbiddenError, exitcode.DetermineExitCode(err), denied)
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	server := fakeBackend(t, "admin")
	setupEnv(t, server.URL)

	a, err := newApp()
	require.NoError(t, err)
	a.Manager.Logout()

	token, _ := a.Store.Load()
	assert.Empty(t, token)
}
