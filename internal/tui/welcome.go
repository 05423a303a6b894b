package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/routes"
	"github.com/thenoetrevino/kanbo/internal/store"
	"github.com/thenoetrevino/kanbo/internal/tui/huhforms"
	"github.com/thenoetrevino/kanbo/internal/tui/state"
)

// welcomePage tracks the board cursor of the home page
type welcomePage struct {
	selected int
}

func (p *welcomePage) clamp(n int) {
	if p.selected >= n {
		p.selected = max(n-1, 0)
	}
}

func (m Model) welcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.authenticated() {
		if key.Matches(msg, m.keys.SignIn, m.keys.OpenBoard) {
			return m, navigate(routes.Auth)
		}
		return m, nil
	}

	boards := m.state.Board.Boards
	switch {
	case key.Matches(msg, m.keys.PrevItem):
		if m.welcome.selected > 0 {
			m.welcome.selected--
		}
	case key.Matches(msg, m.keys.NextItem):
		if m.welcome.selected < len(boards)-1 {
			m.welcome.selected++
		}
	case key.Matches(msg, m.keys.OpenBoard):
		if len(boards) > 0 {
			return m, navigate(routes.BoardPath(boards[m.welcome.selected].ID))
		}
	case key.Matches(msg, m.keys.CreateBoard):
		return m.openCreateBoard()
	case key.Matches(msg, m.keys.DeleteBoard):
		if len(boards) > 0 {
			return m.openDeleteBoard(boards[m.welcome.selected])
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.load()
	case key.Matches(msg, m.keys.Profile):
		return m, navigate(routes.Profile)
	}
	return m, nil
}

func (m Model) openCreateBoard() (tea.Model, tea.Cmd) {
	title, description := new(string), new(string)
	form := huhforms.CreateBoardForm(m.theme, title, description).WithWidth(m.formWidth())

	return m, m.modals.Mount(NewFormModal("New Board", modalCreate, form, func() tea.Cmd {
		req := models.CreateBoardRequest{
			Title:       strings.TrimSpace(*title),
			Description: strings.TrimSpace(*description),
		}
		if errs := req.Validate(); errs != nil {
			return m.notify(state.LevelError, errs.Error())
		}
		return m.do(opCreateBoard, func(ctx context.Context, st *store.Store) error {
			_, err := st.CreateBoard(ctx, req)
			return err
		})
	}))
}

func (m Model) openDeleteBoard(b models.Board) (tea.Model, tea.Cmd) {
	confirm := new(bool)
	question := fmt.Sprintf("Delete board '%s' with all its columns and tasks?", b.Title)
	form := huhforms.CreateConfirmForm(m.theme, question, confirm).WithWidth(m.formWidth())

	return m, m.modals.Mount(NewFormModal("Delete Board", modalDelete, form, func() tea.Cmd {
		if !*confirm {
			return nil
		}
		return m.do(opDeleteBoard, func(ctx context.Context, st *store.Store) error {
			return st.DeleteBoard(ctx, b.ID)
		})
	}))
}

func (m Model) welcomeView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Welcome to kanbo"))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("Boards, columns and tasks, right in your terminal."))
	b.WriteString("\n\n")

	if !m.authenticated() {
		b.WriteString(NormalStyle.Render("Press enter to sign in or create an account."))
		return b.String()
	}

	boards := m.state.Board.Boards
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Your boards (%d)", len(boards))))
	b.WriteString("\n\n")
	if len(boards) == 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("No boards yet. Press %s to create one.", m.cfg.KeyMappings.CreateBoard)))
		return b.String()
	}

	for i, board := range boards {
		line := board.Title
		if board.Description != "" {
			line += SubtleStyle.Render("  " + board.Description)
		}
		if i == m.welcome.selected {
			b.WriteString(SelectedItemStyle.Render(line))
		} else {
			b.WriteString(ItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
