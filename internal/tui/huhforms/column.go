package huhforms

import (
	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/kanbo/internal/models"
)

// CreateColumnForm creates a huh form for adding or renaming a column.
// The form contains a single input field for the column title and
// saves on completion.
func CreateColumnForm(theme *huh.Theme, name *string, isEdit bool) *huh.Form {
	title := "New Column Name"
	if isEdit {
		title = "Rename Column"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title(title).
			Placeholder("Enter column name...").
			Validate(required(models.MsgTitleRequired)).
			Value(name),
	}

	return finish(huh.NewForm(huh.NewGroup(fields...)), theme)
}
