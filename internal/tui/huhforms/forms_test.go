package huhforms

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanbo/internal/config/colors"
	"github.com/thenoetrevino/kanbo/internal/models"
)

func TestLoginFormSubmitBlocksInvalidInput(t *testing.T) {
	f := NewLoginForm(nil)

	_, ok := f.Submit()
	require.False(t, ok)
	assert.Equal(t, models.MsgLoginRequired, f.Errors.Message("login"))
	assert.Equal(t, models.MsgPasswordRequired, f.Errors.Message("password"))

	f.Login = "tester"
	_, ok = f.Submit()
	require.False(t, ok)
	assert.Empty(t, f.Errors.Message("login"))
	assert.Equal(t, "tester", f.Login, "invalid input is kept")
}

func TestLoginFormSubmitResets(t *testing.T) {
	f := NewLoginForm(nil)
	f.Login = "tester"
	f.Password = "secret"

	req, ok := f.Submit()
	require.True(t, ok)
	assert.Equal(t, models.SignInRequest{Login: "tester", Password: "secret"}, req)
	assert.Empty(t, f.Login)
	assert.Empty(t, f.Password)
	assert.Nil(t, f.Errors)
	assert.NotNil(t, f.Form())
}

func TestSignupFormSubmit(t *testing.T) {
	f := NewSignupForm(nil)
	f.Login = "new"

	_, ok := f.Submit()
	require.False(t, ok)
	assert.Equal(t, models.MsgNameRequired, f.Errors.Message("name"))
	assert.Equal(t, models.MsgPasswordRequired, f.Errors.Message("password"))

	f.Name, f.Password = "New User", "pw"
	req, ok := f.Submit()
	require.True(t, ok)
	assert.Equal(t, models.SignUpRequest{Name: "New User", Login: "new", Password: "pw"}, req)
	assert.Empty(t, f.Name)
}

func TestProfileFormPrefills(t *testing.T) {
	f := NewProfileForm(nil, models.User{UserID: "u1", UserName: "Ann", Login: "ann"})
	assert.Equal(t, "Ann", f.Name)
	assert.Equal(t, "ann", f.Login)
	assert.Empty(t, f.Password)
}

func TestRequiredValidator(t *testing.T) {
	check := required(models.MsgTitleRequired)
	assert.EqualError(t, check(""), models.MsgTitleRequired)
	assert.NoError(t, check("   "), "whitespace is a value")
	assert.NoError(t, check("x"))
}

func TestConfirmFormStartsUnconfirmed(t *testing.T) {
	ok := true
	form := CreateConfirmForm(nil, "Delete board?", &ok)
	assert.False(t, ok)
	assert.Equal(t, huh.StateNormal, form.State)
}

func TestCreateKanboTheme(t *testing.T) {
	theme := CreateKanboTheme(*colors.Default())
	require.NotNil(t, theme)
	assert.Equal(t, lipgloss.HiddenBorder(), theme.Blurred.Base.GetBorderStyle())
	assert.Equal(t, lipgloss.Color("#2AA198"), theme.Focused.TextInput.Prompt.GetForeground())
}

func TestKeyMapNewLine(t *testing.T) {
	km := CreateKeyMapWithShiftEnter()
	assert.Contains(t, km.Text.NewLine.Keys(), "shift+enter")
	assert.Equal(t, []string{"ctrl+c"}, km.Quit.Keys())
}
