package huhforms

import (
	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/kanbo/internal/models"
)

// LoginForm is the sign-in form. Values are bound to the exported fields.
type LoginForm struct {
	Login    string
	Password string
	Errors   models.ValidationErrors

	theme *huh.Theme
	form  *huh.Form
}

// NewLoginForm creates an empty sign-in form
func NewLoginForm(theme *huh.Theme) *LoginForm {
	f := &LoginForm{theme: theme}
	f.build()
	return f
}

func (f *LoginForm) build() {
	f.form = finish(huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("login").
			Title("Login").
			Placeholder("Enter your login...").
			Validate(required(models.MsgLoginRequired)).
			Value(&f.Login),
		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required(models.MsgPasswordRequired)).
			Value(&f.Password),
	)), f.theme)
}

// Form returns the huh form to embed in a page
func (f *LoginForm) Form() *huh.Form { return f.form }

// SetForm stores the form returned by huh's Update
func (f *LoginForm) SetForm(form *huh.Form) { f.form = form }

// Request returns the entered values
func (f *LoginForm) Request() models.SignInRequest {
	return models.SignInRequest{Login: f.Login, Password: f.Password}
}

// Submit validates the entered values. Invalid input is kept, its
// messages land in Errors and ok is false. Valid input is returned and
// the form is reset.
func (f *LoginForm) Submit() (req models.SignInRequest, ok bool) {
	req = f.Request()
	if errs := req.Validate(); errs != nil {
		f.Errors = errs
		f.build()
		return req, false
	}
	f.Reset()
	return req, true
}

// Reset clears every value and message and rebuilds the form
func (f *LoginForm) Reset() {
	f.Login, f.Password = "", ""
	f.Errors = nil
	f.build()
}

// SignupForm collects name, login and password. It backs both the
// sign-up form and the profile edit form.
type SignupForm struct {
	Name     string
	Login    string
	Password string
	Errors   models.ValidationErrors

	title string
	theme *huh.Theme
	form  *huh.Form
}

// NewSignupForm creates an empty sign-up form
func NewSignupForm(theme *huh.Theme) *SignupForm {
	f := &SignupForm{theme: theme, title: "Create an account"}
	f.build()
	return f
}

// NewProfileForm creates a form prefilled with the user's name and login.
// The password is always entered again.
func NewProfileForm(theme *huh.Theme, user models.User) *SignupForm {
	f := &SignupForm{
		Name:  user.UserName,
		Login: user.Login,
		theme: theme,
		title: "Edit profile",
	}
	f.build()
	return f
}

func (f *SignupForm) build() {
	f.form = finish(huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Your name...").
			Validate(required(models.MsgNameRequired)).
			Value(&f.Name),
		huh.NewInput().
			Key("login").
			Title("Login").
			Placeholder("Choose a login...").
			Validate(required(models.MsgLoginRequired)).
			Value(&f.Login),
		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required(models.MsgPasswordRequired)).
			Value(&f.Password),
	).Title(f.title)), f.theme)
}

// Form returns the huh form to embed in a page or modal
func (f *SignupForm) Form() *huh.Form { return f.form }

// SetForm stores the form returned by huh's Update
func (f *SignupForm) SetForm(form *huh.Form) { f.form = form }

// Request returns the entered values
func (f *SignupForm) Request() models.SignUpRequest {
	return models.SignUpRequest{Name: f.Name, Login: f.Login, Password: f.Password}
}

// Submit validates the entered values the same way LoginForm.Submit does
func (f *SignupForm) Submit() (req models.SignUpRequest, ok bool) {
	req = f.Request()
	if errs := req.Validate(); errs != nil {
		f.Errors = errs
		f.build()
		return req, false
	}
	f.Reset()
	return req, true
}

// Reset clears every value and message and rebuilds the form
func (f *SignupForm) Reset() {
	f.Name, f.Login, f.Password = "", "", ""
	f.Errors = nil
	f.build()
}
