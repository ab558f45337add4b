package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderLoading() string {
	return fmt.Sprintf("\n  %s Restoring session...\n", m.spin.View())
}

func (m Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("wmsctl — Warehouse Console"))
	b.WriteString("\n")

	if m.loggingIn {
		fmt.Fprintf(&b, "\n  %s Signing in...\n", m.spin.View())
		return b.String()
	}

	if errMsg := m.loginError(); errMsg != "" {
		b.WriteString(m.styles.Error.Render(errMsg))
		b.WriteString("\n\n")
	}

	if m.form != nil {
		b.WriteString(m.form.View())
	}

	b.WriteString(m.styles.Help.Render("enter submit • ctrl+c quit"))
	return b.String()
}

func (m Model) renderBrowse() string {
	header := m.renderHeader()
	sidebar := m.styles.Sidebar.Render(m.renderSidebar())
	content := m.styles.Content.Width(max(20, m.width-lipgloss.Width(sidebar)-4)).Render(m.renderContent())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	help := m.styles.Help.Render("↑/↓ navigate • enter open • r refresh • L logout • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

func (m Model) renderHeader() string {
	user := m.session.User
	badge := m.styles.Badge.Render(user.Role)
	title := m.styles.Title.Render("wmsctl")
	who := m.styles.Muted.Render(user.Username)
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", who, " ", badge)
}

// renderSidebar lists only the sections and entries the current role may
// see; the filtering happened when the navigation was built.
func (m Model) renderSidebar() string {
	var b strings.Builder
	index := 0
	for _, section := range m.nav {
		b.WriteString(m.styles.Section.Render(section.Title))
		b.WriteString("\n")
		for _, entry := range section.Entries {
			line := entry.Title
			if index == m.cursor {
				line = m.styles.Selected.Render(line)
			} else {
				line = m.styles.NavItem.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
			index++
		}
	}
	return b.String()
}

func (m Model) renderContent() string {
	if m.fetching {
		return fmt.Sprintf("%s Loading...", m.spin.View())
	}
	if m.contentErr != "" {
		return m.styles.Error.Render(m.contentErr)
	}
	return m.content
}
