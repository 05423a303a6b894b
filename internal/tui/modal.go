package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/kanbo/internal/cli/styles"
	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/tui/layers"
)

// modalKind picks the border color of a modal
type modalKind int

const (
	modalCreate modalKind = iota
	modalEdit
	modalDelete
	modalDetail
)

func (k modalKind) style() lipgloss.Style {
	switch k {
	case modalEdit:
		return EditInputBoxStyle
	case modalDelete:
		return DeleteConfirmBoxStyle
	case modalDetail:
		return DetailBoxStyle
	default:
		return CreateInputBoxStyle
	}
}

// Modal is a dialog drawn above the page. It is either open, meaning
// mounted in a ModalRoot, or closed; there is no other modal state.
type Modal struct {
	Title string
	kind  modalKind
	body  tea.Model

	// onSubmit runs when a form body completes
	onSubmit func() tea.Cmd
}

// NewFormModal wraps a huh form. onSubmit runs once the form completes.
func NewFormModal(title string, kind modalKind, form *huh.Form, onSubmit func() tea.Cmd) *Modal {
	return &Modal{Title: title, kind: kind, body: form, onSubmit: onSubmit}
}

// View renders the modal box at the given outer width
func (m *Modal) View(width int) string {
	style := m.kind.style().Width(max(width-2, 0))
	var b strings.Builder
	if m.Title != "" {
		b.WriteString(TitleStyle.Render(m.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(m.body.View())
	b.WriteString("\n\n")
	b.WriteString(SubtleStyle.Render("esc close"))
	return style.Render(b.String())
}

// ModalRoot is the single place open modals are mounted. The page below
// it keeps rendering; the mounted modal is drawn centred on top.
type ModalRoot struct {
	mounted *Modal
}

// NewModalRoot creates an empty root
func NewModalRoot() *ModalRoot {
	return &ModalRoot{}
}

// Mount opens m, replacing any modal already open
func (r *ModalRoot) Mount(m *Modal) tea.Cmd {
	r.mounted = m
	if m == nil || m.body == nil {
		return nil
	}
	return m.body.Init()
}

// Unmount closes the open modal
func (r *ModalRoot) Unmount() {
	r.mounted = nil
}

// IsOpen reports whether a modal is mounted
func (r *ModalRoot) IsOpen() bool {
	return r.mounted != nil
}

// Current returns the mounted modal, or nil
func (r *ModalRoot) Current() *Modal {
	return r.mounted
}

// Update forwards msg to the open modal. esc closes it; a completed form
// closes it and runs its submit command; an aborted form closes it.
func (r *ModalRoot) Update(msg tea.Msg) tea.Cmd {
	modal := r.mounted
	if modal == nil {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		r.Unmount()
		return nil
	}

	next, cmd := modal.body.Update(msg)
	modal.body = next

	if form, ok := next.(*huh.Form); ok {
		switch form.State {
		case huh.StateCompleted:
			r.Unmount()
			if modal.onSubmit != nil {
				return tea.Batch(cmd, modal.onSubmit())
			}
		case huh.StateAborted:
			r.Unmount()
		}
	}
	return cmd
}

// Overlay draws the open modal centred over page
func (r *ModalRoot) Overlay(page string, width, height int) string {
	if r.mounted == nil {
		return page
	}
	box := r.mounted.View(layers.ModalWidth(width))
	return layers.PlaceCentered(page, box, width, height)
}

// taskDetail is a scrollable view of one task
type taskDetail struct {
	viewport viewport.Model
}

func newTaskDetail(t models.Task, width, height int) *taskDetail {
	vp := viewport.New(width, height)
	vp.SetContent(renderTaskDetail(t, width))
	return &taskDetail{viewport: vp}
}

func (d *taskDetail) Init() tea.Cmd { return nil }

func (d *taskDetail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

func (d *taskDetail) View() string {
	return d.viewport.View()
}

func renderTaskDetail(t models.Task, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", TitleStyle.Render(t.Title))
	fmt.Fprintf(&b, "%s\n", SubtleStyle.Render(fmt.Sprintf("#%d · %s", t.Order, t.ID)))
	if t.UserID != "" {
		fmt.Fprintf(&b, "%s\n", SubtleStyle.Render("assignee: "+t.UserID))
	}
	b.WriteString("\n")
	b.WriteString(styles.RenderMarkdown(t.Description, width))
	return b.String()
}
