package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/wmstack/wmsctl/internal/api"
	"github.com/wmstack/wmsctl/internal/auth"
)

// ensureLoginForm (re)creates the credentials form. A fresh form is needed
// after a completed attempt; an in-progress one is kept so a forced logout
// arriving mid-typing does not wipe the fields.
func (m *Model) ensureLoginForm() tea.Cmd {
	if m.form != nil && m.form.State != huh.StateCompleted {
		return nil
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Prompt("> "),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Prompt("> "),
		),
	)
	return m.form.Init()
}

// updateLogin drives the credentials form. Editing a field dismisses a
// displayed login failure; submitting runs the login off the event loop.
func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.loggingIn {
		return m, nil
	}
	if m.form == nil {
		return m, m.ensureLoginForm()
	}

	if _, ok := msg.(tea.KeyMsg); ok && m.session.Err != "" {
		// The subscription echoes the cleared state back as a
		// SessionChangedMsg; dropping Err locally just avoids a flicker.
		m.manager.ClearError()
		m.session.Err = ""
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		creds := api.Credentials{
			Username: m.form.GetString("username"),
			Password: m.form.GetString("password"),
		}
		m.loggingIn = true
		return m, tea.Batch(cmd, m.spin.Tick, m.loginCmd(creds))
	}

	return m, cmd
}

// loginCmd performs the login and reports the resulting session state. The
// outcome, success or failure, arrives as a SessionChangedMsg and the guard
// decides what renders next.
func (m Model) loginCmd(creds api.Credentials) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		_ = manager.Login(context.Background(), creds)
		return SessionChangedMsg{State: manager.State()}
	}
}

// loginError returns the failure message to display inline, if any
func (m Model) loginError() string {
	if m.session.Status == auth.StatusFailed {
		return m.session.Err
	}
	return ""
}
