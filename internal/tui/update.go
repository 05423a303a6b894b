package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/kanbo/internal/routes"
	"github.com/thenoetrevino/kanbo/internal/store"
	"github.com/thenoetrevino/kanbo/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.notifications.SetWindowSize(msg.Width, msg.Height)
		m.auth.setWidth(min(msg.Width, 60))
		return m, nil

	case stateMsg:
		return m.handleState(msg.state)

	case navigateMsg:
		return m.navigate(msg.path)

	case resultMsg:
		return m.handleResult(msg)

	case dismissMsg:
		m.notifications.Dismiss(msg.id)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.modals.IsOpen() {
			return m, m.modals.Update(msg)
		}
		return m.handleKey(msg)
	}

	// Anything else belongs to the focused form
	if m.modals.IsOpen() {
		return m, m.modals.Update(msg)
	}
	if m.match.Route.Page == routes.PageAuth {
		return m.updateAuthForm(msg)
	}
	return m, nil
}

// handleState takes a newly published state. Signing in on the auth page
// moves to the home page; losing the token re-runs the guard on the
// current path.
func (m Model) handleState(next store.State) (tea.Model, tea.Cmd) {
	wasAuthenticated := m.authenticated()
	m.state = next
	m.clampSelection()

	cmds := []tea.Cmd{waitForState(m.updates)}
	switch authenticated := m.authenticated(); {
	case authenticated && !wasAuthenticated && m.match.Route.Page == routes.PageAuth:
		cmds = append(cmds, navigate(routes.Root))
	case !authenticated && wasAuthenticated:
		cmds = append(cmds, navigate(m.match.Path))
	}
	return m, tea.Batch(cmds...)
}

// handleResult reports a finished operation. Failures of user actions
// become error notifications; load failures only show inline.
func (m Model) handleResult(msg resultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Debug("operation failed", "op", msg.op, "error", msg.err)
		if msg.op == opLoadBoards || msg.op == opLoadBoard {
			return m, nil
		}
		return m, m.notify(state.LevelError, store.ErrorMessage(msg.err))
	}

	if msg.op == opSignUp {
		m.auth.showLogin()
		return m, tea.Batch(m.auth.current().Init(), m.notify(state.LevelInfo, successMessages[msg.op]))
	}
	if text, ok := successMessages[msg.op]; ok {
		return m, m.notify(state.LevelInfo, text)
	}
	return m, nil
}

// handleKey routes a key press to the current page
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.match.Route.Page

	// The sign-in forms take every key but the tab switch and back
	if page == routes.PageAuth && !m.authenticated() {
		switch {
		case key.Matches(msg, m.keys.SwitchTab):
			m.auth.toggle()
			return m, m.auth.current().Init()
		case key.Matches(msg, m.keys.Back):
			return m, navigate(routes.Root)
		}
		return m.updateAuthForm(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ShowHelp):
		m.showFullHelp = !m.showFullHelp
		return m, nil
	}

	switch page {
	case routes.PageWelcome:
		return m.welcomeKeys(msg)
	case routes.PageAuth:
		return m.authKeys(msg)
	case routes.PageProfile:
		return m.profileKeys(msg)
	case routes.PageBoard:
		return m.boardKeys(msg)
	}

	if key.Matches(msg, m.keys.Home, m.keys.Back) {
		return m, navigate(routes.Root)
	}
	return m, nil
}

// clampSelection keeps cursors inside lists that may have shrunk.
// The board cursor is left alone while tasks load so it can follow a
// task that is still moving.
func (m Model) clampSelection() {
	m.welcome.clamp(len(m.state.Board.Boards))
	if m.state.Task.Status != store.Loading {
		m.board.clamp(m.columns(), m.state)
	}
}
