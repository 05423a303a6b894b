package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/routes"
	"github.com/thenoetrevino/kanbo/internal/store"
	"github.com/thenoetrevino/kanbo/internal/tui/huhforms"
)

type authTab int

const (
	tabLogin authTab = iota
	tabSignup
)

// authPage holds the sign-in and sign-up forms
type authPage struct {
	tab    authTab
	login  *huhforms.LoginForm
	signup *huhforms.SignupForm
	width  int
}

func newAuthPage(theme *huh.Theme) *authPage {
	return &authPage{
		login:  huhforms.NewLoginForm(theme),
		signup: huhforms.NewSignupForm(theme),
	}
}

func (p *authPage) current() *huh.Form {
	if p.tab == tabSignup {
		return p.signup.Form()
	}
	return p.login.Form()
}

func (p *authPage) setForm(form *huh.Form) {
	if p.tab == tabSignup {
		p.signup.SetForm(form)
		return
	}
	p.login.SetForm(form)
}

func (p *authPage) toggle() {
	if p.tab == tabLogin {
		p.tab = tabSignup
	} else {
		p.tab = tabLogin
	}
}

func (p *authPage) showLogin() {
	p.tab = tabLogin
}

func (p *authPage) reset() {
	p.tab = tabLogin
	p.login.Reset()
	p.signup.Reset()
	p.applyWidth()
}

func (p *authPage) setWidth(width int) {
	p.width = width
	p.applyWidth()
}

// applyWidth sizes rebuilt forms
func (p *authPage) applyWidth() {
	if p.width <= 0 {
		return
	}
	p.login.SetForm(p.login.Form().WithWidth(p.width))
	p.signup.SetForm(p.signup.Form().WithWidth(p.width))
}

// errors returns the validation messages of the shown form
func (p *authPage) errors() models.ValidationErrors {
	if p.tab == tabSignup {
		return p.signup.Errors
	}
	return p.login.Errors
}

// updateAuthForm feeds msg to the shown form and submits it once complete
func (m Model) updateAuthForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.auth.current().Update(msg)
	form, ok := next.(*huh.Form)
	if !ok {
		return m, cmd
	}
	m.auth.setForm(form)
	if form.State != huh.StateCompleted {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.submitAuth())
}

// submitAuth validates the completed form. Invalid input dispatches
// nothing; valid input resets the form and runs sign-in or sign-up.
func (m Model) submitAuth() tea.Cmd {
	if m.auth.tab == tabSignup {
		req, ok := m.auth.signup.Submit()
		m.auth.applyWidth()
		initForm := m.auth.current().Init()
		if !ok {
			return initForm
		}
		return tea.Batch(initForm, m.do(opSignUp, func(ctx context.Context, st *store.Store) error {
			_, err := st.SignUp(ctx, req)
			return err
		}))
	}

	req, ok := m.auth.login.Submit()
	m.auth.applyWidth()
	initForm := m.auth.current().Init()
	if !ok {
		return initForm
	}
	return tea.Batch(initForm, m.do(opSignIn, func(ctx context.Context, st *store.Store) error {
		_, err := st.SignIn(ctx, req)
		return err
	}))
}

// authKeys handles the auth page of a signed-in user
func (m Model) authKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Logout):
		return m, m.logout()
	case key.Matches(msg, m.keys.Home, m.keys.Back):
		return m, navigate(routes.Root)
	}
	return m, nil
}

func (m Model) logout() tea.Cmd {
	return m.do(opLogout, func(ctx context.Context, st *store.Store) error {
		st.Logout(ctx)
		return nil
	})
}

func (m Model) authView() string {
	if m.authenticated() {
		user := store.SelectUser(m.state)
		return lipgloss.JoinVertical(lipgloss.Left,
			TitleStyle.Render("Signed in"),
			"",
			NormalStyle.Render(fmt.Sprintf("You are signed in as %s (%s).", user.UserName, user.Login)),
			"",
			SubtleStyle.Render(fmt.Sprintf("Press %s to log out.", m.cfg.KeyMappings.Logout)),
		)
	}

	loginTab, signupTab := ActiveTabStyle, TabStyle
	if m.auth.tab == tabSignup {
		loginTab, signupTab = TabStyle, ActiveTabStyle
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Bottom,
		loginTab.Render("Login"),
		signupTab.Render("Sign up"),
	)

	var b strings.Builder
	b.WriteString(tabs)
	b.WriteString("\n\n")
	b.WriteString(m.auth.current().View())
	for _, fe := range m.auth.errors() {
		b.WriteString("\n")
		b.WriteString(ErrorLineStyle.Render(fe.Message))
	}
	return b.String()
}
