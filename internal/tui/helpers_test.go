package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/kanbo/internal/app"
	"github.com/thenoetrevino/kanbo/internal/logging"
	"github.com/thenoetrevino/kanbo/internal/testutil"
	clitest "github.com/thenoetrevino/kanbo/internal/testutil/cli"
)

// cmdTimeout bounds how long collect waits on one command. Commands that
// block longer, like the store subscription or notification ticks, are
// abandoned.
const cmdTimeout = 300 * time.Millisecond

func newTestModel(t *testing.T, opts ...Option) (Model, *testutil.FakeAPI, *app.App) {
	t.Helper()
	fake, a := clitest.SetupCLITest(t)
	m := newModelFor(t, a, opts...)
	return m, fake, a
}

func newModelFor(t *testing.T, a *app.App, opts ...Option) Model {
	t.Helper()
	opts = append([]Option{WithLogger(logging.Discard())}, opts...)
	m := InitialModel(context.Background(), a.Store, a.Config, opts...)
	t.Cleanup(m.Close)
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// update applies msg and returns the resulting Model
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// updateCmd applies msg and returns the resulting Model and command
func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// collect runs cmd and everything it batches, returning the produced messages
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(t, c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(cmdTimeout):
		return nil
	}
}

// result finds the report of op among msgs
func result(t *testing.T, msgs []tea.Msg, op string) resultMsg {
	t.Helper()
	for _, msg := range msgs {
		if r, ok := msg.(resultMsg); ok && r.op == op {
			return r
		}
	}
	t.Fatalf("no result for %s in %#v", op, msgs)
	return resultMsg{}
}

// navigation finds the navigate request among msgs
func navigation(msgs []tea.Msg) (string, bool) {
	for _, msg := range msgs {
		if n, ok := msg.(navigateMsg); ok {
			return n.path, true
		}
	}
	return "", false
}

// syncState feeds the store's current state to the model
func syncState(t *testing.T, m Model, a *app.App) (Model, tea.Cmd) {
	t.Helper()
	return updateCmd(t, m, stateMsg{state: a.Store.State()})
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
