package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/kanbo/internal/routes"
	"github.com/thenoetrevino/kanbo/internal/store"
	"github.com/thenoetrevino/kanbo/internal/tui/state"
)

// View renders the current page with the open modal and notifications
// drawn on top
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.headerView()
	footer := m.footerView()

	var body string
	switch m.match.Route.Page {
	case routes.PageWelcome:
		body = m.welcomeView()
	case routes.PageAuth:
		body = m.authView()
	case routes.PageProfile:
		body = m.profileView()
	case routes.PageBoard:
		body = m.boardView()
	default:
		body = m.notFoundView()
	}

	bodyHeight := m.contentHeight(header, footer)
	body = lipgloss.NewStyle().
		Padding(1, 2).
		MaxWidth(m.width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	view = lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, view)

	view = m.modals.Overlay(view, m.width, m.height)
	return m.notifications.Overlay(view, renderNotification)
}

func (m Model) headerView() string {
	left := TitleStyle.Render("kanbo") + SubtleStyle.Render("  "+m.match.Path)

	right := SubtleStyle.Render("not signed in")
	if m.authenticated() {
		user := store.SelectUser(m.state)
		name := user.UserName
		if name == "" {
			name = user.Login
		}
		right = NormalStyle.Render(name)
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return " " + left + strings.Repeat(" ", gap) + right
}

// footerView shows the loading spinner, the page's slice errors and the
// key help
func (m Model) footerView() string {
	var lines []string

	if m.loading() {
		lines = append(lines, " "+m.spinner.View()+SubtleStyle.Render(" Loading..."))
	}
	for _, s := range pageSlices(m.match.Route.Page) {
		if msg := m.state.Err(s); msg != "" && m.state.Status(s) == store.Failed {
			lines = append(lines, " "+ErrorLineStyle.Render(fmt.Sprintf("✗ %s", msg)))
		}
	}

	bindings := m.keys.pageHelp(m.match.Route.Page, m.authenticated())
	if m.modals.IsOpen() {
		bindings = []key.Binding{m.keys.Back}
	}
	if m.showFullHelp {
		lines = append(lines, " "+m.help.FullHelpView(columnsOf(bindings, 4)))
	} else {
		lines = append(lines, " "+m.help.ShortHelpView(bindings))
	}
	return strings.Join(lines, "\n")
}

// columnsOf splits bindings into groups of n for the full help view
func columnsOf(bindings []key.Binding, n int) [][]key.Binding {
	var groups [][]key.Binding
	for len(bindings) > n {
		groups = append(groups, bindings[:n])
		bindings = bindings[n:]
	}
	return append(groups, bindings)
}

func (m Model) notFoundView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("404"),
		"",
		NormalStyle.Render(fmt.Sprintf("Nothing lives at %s.", m.match.Path)),
		"",
		SubtleStyle.Render(fmt.Sprintf("Press %s to go home.", m.cfg.KeyMappings.Home)),
	)
}

func renderNotification(n state.Notification) string {
	switch n.Level {
	case state.LevelError:
		return ErrorBannerStyle.Render("✗ " + n.Message)
	case state.LevelWarning:
		return WarningBannerStyle.Render("! " + n.Message)
	default:
		return InfoBannerStyle.Render("✓ " + n.Message)
	}
}
