package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/tui/huhforms"
)

func testForm(name *string) *huh.Form {
	return huhforms.CreateColumnForm(nil, name, false)
}

func TestModalRootMountUnmount(t *testing.T) {
	root := NewModalRoot()
	assert.False(t, root.IsOpen())
	assert.Nil(t, root.Current())

	name := ""
	modal := NewFormModal("New Column", modalCreate, testForm(&name), nil)
	root.Mount(modal)
	assert.True(t, root.IsOpen())
	assert.Same(t, modal, root.Current())

	root.Unmount()
	assert.False(t, root.IsOpen())
}

func TestModalRootEscCloses(t *testing.T) {
	root := NewModalRoot()
	name := ""
	submitted := false
	root.Mount(NewFormModal("New Column", modalCreate, testForm(&name), func() tea.Cmd {
		submitted = true
		return nil
	}))

	root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, root.IsOpen())
	assert.False(t, submitted)
}

func TestModalRootSubmitsCompletedForm(t *testing.T) {
	root := NewModalRoot()
	name := "Done"
	form := testForm(&name)
	submitted := false
	root.Mount(NewFormModal("New Column", modalCreate, form, func() tea.Cmd {
		submitted = true
		return nil
	}))

	form.State = huh.StateCompleted
	root.Update(struct{}{})

	assert.True(t, submitted)
	assert.False(t, root.IsOpen())
}

func TestModalRootAbortedFormCloses(t *testing.T) {
	root := NewModalRoot()
	name := ""
	form := testForm(&name)
	submitted := false
	root.Mount(NewFormModal("New Column", modalCreate, form, func() tea.Cmd {
		submitted = true
		return nil
	}))

	form.State = huh.StateAborted
	root.Update(struct{}{})

	assert.False(t, submitted)
	assert.False(t, root.IsOpen())
}

func TestModalRootOverlay(t *testing.T) {
	root := NewModalRoot()
	page := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)

	assert.Equal(t, page, root.Overlay(page, 80, 24))

	detail := newTaskDetail(models.Task{ID: "t1", Title: "Ship it", Order: 2}, 30, 5)
	root.Mount(&Modal{Title: "Task", kind: modalDetail, body: detail})

	out := root.Overlay(page, 80, 24)
	require.NotEqual(t, page, out)
	assert.Contains(t, out, "Ship it")
	assert.Contains(t, out, "esc close")
	assert.Equal(t, 24, len(strings.Split(out, "\n")))
}
