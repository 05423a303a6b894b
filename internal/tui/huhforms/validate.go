// Package huhforms builds the huh forms the TUI shows for sign-in,
// sign-up, profile edits, boards, columns and tasks.
package huhforms

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// required returns a huh validator failing with msg on empty input
func required(msg string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// finish applies the shared form options
func finish(form *huh.Form, theme *huh.Theme) *huh.Form {
	form = form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
	if theme != nil {
		form = form.WithTheme(theme)
	}
	return form
}
