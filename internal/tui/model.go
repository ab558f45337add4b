// Package tui is the interactive warehouse console. One Bubble Tea model
// drives three views: a loading screen while the stored session resolves, a
// login form, and the role-filtered browse view. Every view change goes
// through the route guard, so a screen can never render ahead of the
// session state that permits it.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/wmstack/wmsctl/internal/api"
	"github.com/wmstack/wmsctl/internal/auth"
	"github.com/wmstack/wmsctl/internal/guard"
	"github.com/wmstack/wmsctl/internal/rbac"
)

// ViewType represents the current view being displayed
type ViewType int

const (
	// ViewLoading is shown while the persisted session resolves
	ViewLoading ViewType = iota
	// ViewLogin is the credentials form
	ViewLogin
	// ViewBrowse is the sidebar plus content view
	ViewBrowse
)

const homeEntry = "dashboard"

// SessionChangedMsg carries a new session snapshot into the event loop.
// NewProgram wires the session manager's subscription to it, so forced
// logouts land here no matter which request triggered them.
type SessionChangedMsg struct {
	State auth.State
}

// contentMsg delivers fetched screen content
type contentMsg struct {
	entryID string
	body    string
}

// contentErrMsg delivers a failed screen fetch
type contentErrMsg struct {
	entryID string
	message string
}

// Model is the console application state
type Model struct {
	manager *auth.Manager
	loader  *auth.Loader
	client  *api.Client

	session     auth.State
	currentView ViewType

	// Navigation state. entryID is the open screen; pendingEntry is where
	// the user was headed when the session forced a detour through login.
	nav          []rbac.Section
	flat         []rbac.Entry
	cursor       int
	entryID      string
	pendingEntry string

	form      *huh.Form
	loggingIn bool

	spin       spinner.Model
	content    string
	contentErr string
	fetching   bool

	width    int
	height   int
	ready    bool
	quitting bool
	styles   Styles
}

// NewModel creates the console model
func NewModel(manager *auth.Manager, loader *auth.Loader, client *api.Client) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{
		manager:     manager,
		loader:      loader,
		client:      client,
		session:     manager.State(),
		currentView: ViewLoading,
		spin:        s,
		styles:      DefaultStyles(),
	}
}

// NewProgram wraps the model in a Bubble Tea program and subscribes it to
// session transitions, so a 401 on any request re-evaluates the open view.
func NewProgram(m Model) *tea.Program {
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.manager.Subscribe(func(s auth.State) {
		p.Send(SessionChangedMsg{State: s})
	})
	return p
}

// Init starts the spinner and kicks off session resolution
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.resolveSession())
}

// resolveSession runs the one-shot session loader off the event loop
func (m Model) resolveSession() tea.Cmd {
	loader := m.loader
	manager := m.manager
	return func() tea.Msg {
		loader.Load(context.Background())
		return SessionChangedMsg{State: manager.State()}
	}
}

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case SessionChangedMsg:
		m.session = msg.State
		return m.syncView()

	case contentMsg:
		if msg.entryID == m.entryID {
			m.content = msg.body
			m.contentErr = ""
			m.fetching = false
		}
		return m, nil

	case contentErrMsg:
		if msg.entryID == m.entryID {
			m.contentErr = msg.message
			m.fetching = false
		}
		return m, nil

	case spinner.TickMsg:
		if m.currentView == ViewLoading || m.fetching || m.loggingIn {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.currentView == ViewLogin {
		return m.updateLogin(msg)
	}
	return m, nil
}

// View renders the console
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.quitting {
		return ""
	}

	switch m.currentView {
	case ViewLoading:
		return m.renderLoading()
	case ViewLogin:
		return m.renderLogin()
	case ViewBrowse:
		return m.renderBrowse()
	default:
		return "Unknown view"
	}
}

// syncView re-evaluates the guard for the current session state and moves
// the console to the view it permits.
func (m Model) syncView() (tea.Model, tea.Cmd) {
	switch guard.Decide(m.session) {
	case guard.DecisionWait:
		m.currentView = ViewLoading
		return m, m.spin.Tick

	case guard.DecisionRedirect:
		if m.currentView == ViewBrowse && m.entryID != "" {
			m.pendingEntry = m.entryID
		}
		m.currentView = ViewLogin
		m.loggingIn = false
		m.content = ""
		m.contentErr = ""
		return m, m.ensureLoginForm()

	default:
		return m.enterBrowse()
	}
}

// enterBrowse builds the role-filtered navigation and opens the pending or
// current screen, falling back to the dashboard when the target is not
// visible to this role.
func (m Model) enterBrowse() (tea.Model, tea.Cmd) {
	role := rbac.ParseRole(m.session.User.Role)
	m.nav = rbac.VisibleNav(role)
	m.flat = flattenNav(m.nav)
	m.currentView = ViewBrowse
	m.loggingIn = false
	m.form = nil

	target := m.pendingEntry
	m.pendingEntry = ""
	if target == "" {
		target = m.entryID
	}
	if target == "" || !m.entryVisible(target) {
		target = homeEntry
	}
	return m.open(target)
}

// open switches the browse view to a navigation entry and fetches its
// content. The caller has already established the entry is visible.
func (m Model) open(entryID string) (tea.Model, tea.Cmd) {
	m.entryID = entryID
	m.content = ""
	m.contentErr = ""
	m.fetching = true
	for i, entry := range m.flat {
		if entry.ID == entryID {
			m.cursor = i
			break
		}
	}
	return m, tea.Batch(m.spin.Tick, m.fetchCmd(entryID))
}

func (m Model) entryVisible(entryID string) bool {
	for _, entry := range m.flat {
		if entry.ID == entryID {
			return true
		}
	}
	return false
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.currentView == ViewLogin {
		return m.updateLogin(msg)
	}

	if m.currentView != ViewBrowse {
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.flat)-1 {
			m.cursor++
		}

	case "enter":
		if m.cursor < len(m.flat) {
			return m.open(m.flat[m.cursor].ID)
		}

	case "r":
		if m.entryID != "" {
			return m.open(m.entryID)
		}

	case "L":
		m.manager.Logout()
		m.session = m.manager.State()
		m.pendingEntry = ""
		m.entryID = ""
		return m.syncView()
	}

	return m, nil
}

func flattenNav(sections []rbac.Section) []rbac.Entry {
	var out []rbac.Entry
	for _, section := range sections {
		out = append(out, section.Entries...)
	}
	return out
}

// Styles contains lipgloss styles for the console
type Styles struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Selected lipgloss.Style
	NavItem  lipgloss.Style
	Sidebar  lipgloss.Style
	Content  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
	Badge    lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color("63")).
			Foreground(lipgloss.Color("230")).
			Bold(true).
			Padding(0, 1),
		NavItem: lipgloss.NewStyle().
			Padding(0, 1),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			MarginRight(2),
		Content: lipgloss.NewStyle().
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color("86")).
			Foreground(lipgloss.Color("16")).
			Padding(0, 1),
	}
}
