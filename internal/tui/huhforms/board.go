package huhforms

import (
	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/kanbo/internal/models"
)

// CreateBoardForm creates a huh form for a new board
func CreateBoardForm(theme *huh.Theme, title, description *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Board Title").
			Placeholder("Enter board title...").
			Validate(required(models.MsgTitleRequired)).
			Value(title),
		huh.NewInput().
			Key("description").
			Title("Description").
			Placeholder("Optional").
			Value(description),
	}

	return finish(huh.NewForm(huh.NewGroup(fields...)), theme)
}

// CreateConfirmForm creates a yes/no form; confirm stays false unless
// the user picks the affirmative answer
func CreateConfirmForm(theme *huh.Theme, question string, confirm *bool) *huh.Form {
	*confirm = false
	field := huh.NewConfirm().
		Key("confirm").
		Title(question).
		Affirmative("Delete").
		Negative("Cancel").
		Value(confirm)

	return finish(huh.NewForm(huh.NewGroup(field)), theme)
}
