package models

import "strings"

// Field validation messages shown next to form inputs
const (
	MsgLoginRequired    = "Login is required"
	MsgPasswordRequired = "Password is required"
	MsgNameRequired     = "Name is required"
	MsgTitleRequired    = "Title is required"
)

// FieldError is a single failed field rule
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors lists every failed field of a request.
// A nil value means the request is valid.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Message returns the message for field, or ""
func (v ValidationErrors) Message(field string) string {
	for _, fe := range v {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// required fails only on the empty string; whitespace counts as a value
func required(v ValidationErrors, field, value, msg string) ValidationErrors {
	if value == "" {
		return append(v, FieldError{Field: field, Message: msg})
	}
	return v
}

// Validate checks the sign-in form
func (r SignInRequest) Validate() ValidationErrors {
	var v ValidationErrors
	v = required(v, "login", r.Login, MsgLoginRequired)
	v = required(v, "password", r.Password, MsgPasswordRequired)
	return v
}

// Validate checks the sign-up and profile forms
func (r SignUpRequest) Validate() ValidationErrors {
	var v ValidationErrors
	v = required(v, "name", r.Name, MsgNameRequired)
	v = required(v, "login", r.Login, MsgLoginRequired)
	v = required(v, "password", r.Password, MsgPasswordRequired)
	return v
}

// Validate checks the board form
func (r CreateBoardRequest) Validate() ValidationErrors {
	return required(nil, "title", r.Title, MsgTitleRequired)
}

// Validate checks the column form
func (r CreateColumnRequest) Validate() ValidationErrors {
	return required(nil, "title", r.Title, MsgTitleRequired)
}

// Validate checks the task form
func (b TaskBody) Validate() ValidationErrors {
	return required(nil, "title", b.Title, MsgTitleRequired)
}
