package huhforms

import (
	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/kanbo/internal/models"
)

// CreateTaskForm creates a huh form for adding/editing a task.
// The form writes through the given pointers.
func CreateTaskForm(
	theme *huh.Theme,
	title *string,
	description *string,
	confirm *bool,
	descriptionLines int,
) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			Validate(required(models.MsgTitleRequired)).
			Value(title),
	)

	// Description text area grows with the modal
	fields = append(fields,
		huh.NewText().
			Key("description").
			Title("Description").
			Description("Markdown is supported").
			Placeholder("Enter task description...").
			CharLimit(5000).
			Lines(max(descriptionLines, 3)).
			Value(description),
	)

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Submit this task?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)

	return finish(huh.NewForm(huh.NewGroup(fields...)), theme)
}
