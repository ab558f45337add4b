package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmstack/wmsctl/internal/api"
	"github.com/wmstack/wmsctl/internal/auth"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	client := api.NewClient("http://127.0.0.1:1")
	store := auth.NewStore(t.TempDir())
	manager := auth.NewManager(client, store)
	loader := auth.NewLoader(manager)

	m := NewModel(manager, loader, client)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func authenticated(username, role string) SessionChangedMsg {
	return SessionChangedMsg{State: auth.State{
		Status: auth.StatusAuthenticated,
		User:   &api.User{Username: username, Role: role},
		Token:  "tok-123",
	}}
}

func TestModelStartsLoading(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, ViewLoading, m.currentView)

	m = apply(t, m, SessionChangedMsg{State: auth.State{Status: auth.StatusLoading}})
	assert.Equal(t, ViewLoading, m.currentView, "unresolved session keeps the loading view")
}

func TestAnonymousSessionShowsLogin(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, SessionChangedMsg{State: auth.State{Status: auth.StatusAnonymous}})

	assert.Equal(t, ViewLogin, m.currentView)
	assert.NotNil(t, m.form)
}

func TestAuthenticatedSessionShowsBrowse(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, authenticated("amara", "warehouse_manager"))

	assert.Equal(t, ViewBrowse, m.currentView)
	assert.Equal(t, homeEntry, m.entryID)
	assert.True(t, m.fetching)
}

func TestNavigationFilteredByRole(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, authenticated("tomas", "team_lead"))

	var sections []string
	for _, s := range m.nav {
		sections = append(sections, s.ID)
	}
	assert.Equal(t, []string{"dashboard", "inventory"}, sections)

	var entries []string
	for _, e := range m.flat {
		entries = append(entries, e.ID)
	}
	assert.Equal(t, []string{"dashboard", "inventory.items", "inventory.distribution"}, entries)
}

func TestNavigateAndOpen(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, authenticated("tomas", "team_lead"))

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "inventory.items", m.entryID)
	assert.True(t, m.fetching)

	// Cursor clamps at the ends.
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
}

func TestForcedLogoutReturnsToLoginAndBack(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, authenticated("tomas", "team_lead"))
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "inventory.items", m.entryID)

	// The backend rejects the token mid-session.
	m = apply(t, m, SessionChangedMsg{State: auth.State{Status: auth.StatusAnonymous}})
	assert.Equal(t, ViewLogin, m.currentView)
	assert.Equal(t, "inventory.items", m.pendingEntry)

	// Logging back in returns to where the user was.
	m = apply(t, m, authenticated("tomas", "team_lead"))
	assert.Equal(t, ViewBrowse, m.currentView)
	assert.Equal(t, "inventory.items", m.entryID)
}

func TestRoleChangeFallsBackToDashboard(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, authenticated("root", "admin"))

	updated, _ := m.open("settings.company")
	m = updated.(Model)
	require.Equal(t, "settings.company", m.entryID)

	m = apply(t, m, SessionChangedMsg{State: auth.State{Status: auth.StatusAnonymous}})
	m = apply(t, m, authenticated("tomas", "team_lead"))

	assert.Equal(t, homeEntry, m.entryID,
		"a screen the new role cannot see is replaced, not rendered")
}

func TestLoginFailureShownInline(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, SessionChangedMsg{State: auth.State{
		Status: auth.StatusFailed,
		Err:    "Invalid credentials",
	}})

	assert.Equal(t, ViewLogin, m.currentView)
	assert.Equal(t, "Invalid credentials", m.loginError())
	assert.Contains(t, m.View(), "Invalid credentials")
}

func TestStaleContentIgnored(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, authenticated("amara", "warehouse_manager"))
	require.Equal(t, homeEntry, m.entryID)

	m = apply(t, m, contentMsg{entryID: "inventory.items", body: "stale"})
	assert.True(t, m.fetching, "content for a screen we left is dropped")
	assert.Empty(t, m.content)

	m = apply(t, m, contentMsg{entryID: homeEntry, body: "fresh"})
	assert.False(t, m.fetching)
	assert.Equal(t, "fresh", m.content)
}

func TestContentErrorDisplayed(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, authenticated("amara", "warehouse_manager"))

	m = apply(t, m, contentErrMsg{entryID: homeEntry, message: "Internal server error. Please try again later."})
	assert.Equal(t, "Internal server error. Please try again later.", m.contentErr)
	assert.Contains(t, m.View(), "Internal server error")
}

func TestBillingScreenIsStatic(t *testing.T) {
	// No backend endpoint backs the billing screen; it renders without a
	// single request going out.
	body, err := fetchScreen(context.Background(), nil, "settings.billing", &api.User{Username: "root", Role: "admin"})
	require.NoError(t, err)
	assert.Contains(t, body, "Billing")
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, authenticated("amara", "warehouse_manager"))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, updated.(Model).quitting)
	assert.NotNil(t, cmd)
}
