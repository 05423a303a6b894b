package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/kanbo/internal/store"
	"github.com/thenoetrevino/kanbo/internal/tui/state"
)

// notificationTTL is how long a notification stays on screen
const notificationTTL = 4 * time.Second

// Operations reported back through resultMsg
const (
	opLoadBoards   = "loadBoards"
	opLoadBoard    = "loadBoard"
	opSignIn       = "signIn"
	opSignUp       = "signUp"
	opLogout       = "logout"
	opUpdateUser   = "updateUser"
	opDeleteUser   = "deleteUser"
	opCreateBoard  = "createBoard"
	opDeleteBoard  = "deleteBoard"
	opCreateColumn = "createColumn"
	opRenameColumn = "renameColumn"
	opDeleteColumn = "deleteColumn"
	opCreateTask   = "createTask"
	opUpdateTask   = "updateTask"
	opMoveTask     = "moveTask"
	opDeleteTask   = "deleteTask"
)

// successMessages are shown when an operation finishes without error.
// Loads report nothing; their failures show inline.
var successMessages = map[string]string{
	opSignIn:       "Signed in",
	opSignUp:       "Account created, sign in to continue",
	opLogout:       "Signed out",
	opUpdateUser:   "Profile updated",
	opDeleteUser:   "Account deleted",
	opCreateBoard:  "Board created",
	opDeleteBoard:  "Board deleted",
	opCreateColumn: "Column created",
	opRenameColumn: "Column renamed",
	opDeleteColumn: "Column deleted",
	opCreateTask:   "Task created",
	opUpdateTask:   "Task updated",
	opMoveTask:     "Task moved",
	opDeleteTask:   "Task deleted",
}

// stateMsg carries a state published by the store
type stateMsg struct {
	state store.State
}

// navigateMsg asks the router to show path
type navigateMsg struct {
	path string
}

// resultMsg reports a finished store operation
type resultMsg struct {
	op  string
	err error
}

// dismissMsg removes a notification once its time is up
type dismissMsg struct {
	id int
}

// waitForState blocks until the store publishes, then delivers the state.
// A closed subscription ends the loop.
func waitForState(ch <-chan store.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return nil
		}
		return stateMsg{state: st}
	}
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{path: path}
	}
}

// do runs fn off the update loop and reports how it went
func (m Model) do(op string, fn func(ctx context.Context, st *store.Store) error) tea.Cmd {
	ctx, st := m.ctx, m.store
	return func() tea.Msg {
		return resultMsg{op: op, err: fn(ctx, st)}
	}
}

// notify shows a notification and schedules its removal
func (m Model) notify(level state.NotificationLevel, message string) tea.Cmd {
	id := m.notifications.Add(level, message)
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return dismissMsg{id: id}
	})
}
