package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/routes"
	"github.com/thenoetrevino/kanbo/internal/store"
	"github.com/thenoetrevino/kanbo/internal/tui/huhforms"
	"github.com/thenoetrevino/kanbo/internal/tui/state"
)

func (m Model) profileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	user := store.SelectUser(m.state)
	switch {
	case key.Matches(msg, m.keys.EditProfile):
		return m.openEditProfile(user)
	case key.Matches(msg, m.keys.DeleteAccount):
		return m.openDeleteAccount(user)
	case key.Matches(msg, m.keys.Logout):
		return m, m.logout()
	case key.Matches(msg, m.keys.Home, m.keys.Back):
		return m, navigate(routes.Root)
	}
	return m, nil
}

func (m Model) openEditProfile(user models.User) (tea.Model, tea.Cmd) {
	form := huhforms.NewProfileForm(m.theme, user)
	body := form.Form().WithWidth(m.formWidth())

	return m, m.modals.Mount(NewFormModal("Edit Profile", modalEdit, body, func() tea.Cmd {
		req, ok := form.Submit()
		if !ok {
			return m.notify(state.LevelError, form.Errors.Error())
		}
		return m.do(opUpdateUser, func(ctx context.Context, st *store.Store) error {
			_, err := st.UpdateUser(ctx, user.UserID, req)
			return err
		})
	}))
}

func (m Model) openDeleteAccount(user models.User) (tea.Model, tea.Cmd) {
	confirm := new(bool)
	form := huhforms.CreateConfirmForm(m.theme,
		"Delete your account? This cannot be undone.", confirm).WithWidth(m.formWidth())

	return m, m.modals.Mount(NewFormModal("Delete Account", modalDelete, form, func() tea.Cmd {
		if !*confirm {
			return nil
		}
		return m.do(opDeleteUser, func(ctx context.Context, st *store.Store) error {
			return st.DeleteUser(ctx, user.UserID)
		})
	}))
}

func (m Model) profileView() string {
	user := store.SelectUser(m.state)

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Profile"))
	b.WriteString("\n\n")
	for _, row := range [][2]string{
		{"Name", user.UserName},
		{"Login", user.Login},
		{"ID", user.UserID},
	} {
		b.WriteString(SubtleStyle.Render(row[0] + ": "))
		b.WriteString(NormalStyle.Render(row[1]))
		b.WriteString("\n")
	}
	return b.String()
}
