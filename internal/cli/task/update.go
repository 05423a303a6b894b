package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [task-id]",
		Short: "Update or move a task",
		Long: `Update a task. Fields you leave out keep their value.
Use --to-column to move the task to another column.

Examples:
  kanbo task update <task-id> --column=Todo --title="Fix the bug"
  kanbo task update <task-id> --column=Todo --to-column=Done
  echo "details" | kanbo task update <task-id> --column=Todo --description=-
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Task ID")
	cmd.Flags().String("column", "", "Column ID or title holding the task (required)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("user", "", "New assignee user ID")
	cmd.Flags().Int("order", 0, "New position")
	cmd.Flags().String("to-column", "", "Move the task to this column (ID or title)")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)
	flags := cmd.Flags()

	taskID, err := parser.ID(args, "id")
	if err != nil {
		return err
	}
	columnRef, err := parser.String("column")
	if err != nil {
		return err
	}
	if !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("user") &&
		!flags.Changed("order") && !flags.Changed("to-column") {
		return cli.Usage(formatter, "nothing to update",
			"Pass at least one of --title, --description, --user, --order, --to-column")
	}
	order, err := parser.Order("order")
	if err != nil {
		return err
	}
	boardID, err := cli.BoardID(cmd, formatter)
	if err != nil {
		return err
	}

	cliInstance, err := cli.Setup(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.Close(cliInstance)

	if err := cli.RequireAuth(cliInstance, formatter); err != nil {
		return err
	}

	from, err := boardColumn(ctx, cliInstance, formatter, boardID, columnRef)
	if err != nil {
		return err
	}
	ref := models.RequestGetTask{BoardID: boardID, ColumnID: from.ID, TaskID: taskID}
	current, err := cliInstance.App.Store.GetTask(ctx, ref)
	if err != nil {
		return cli.Fail(formatter, "TASK_NOT_FOUND", err)
	}

	body := models.TaskBody{
		Title:       current.Title,
		Order:       current.Order,
		Description: current.Description,
		UserID:      current.UserID,
		BoardID:     boardID,
		ColumnID:    from.ID,
	}
	if flags.Changed("title") {
		body.Title, _ = flags.GetString("title")
	}
	if flags.Changed("description") {
		raw, _ := flags.GetString("description")
		if body.Description, err = cli.ReadText(raw, cmd.InOrStdin()); err != nil {
			return cli.Usage(formatter, err.Error(), "")
		}
	}
	if flags.Changed("user") {
		body.UserID, _ = flags.GetString("user")
	}
	if flags.Changed("order") {
		body.Order = order
	}
	dest := from
	if flags.Changed("to-column") {
		target, _ := flags.GetString("to-column")
		if dest, err = boardColumn(ctx, cliInstance, formatter, boardID, target); err != nil {
			return err
		}
		body.ColumnID = dest.ID
	}
	if err := body.Validate(); err != nil {
		return cli.Usage(formatter, err.Error(), "")
	}

	t, err := cliInstance.App.Store.UpdateTask(ctx, models.RequestUpdateTask{
		BoardID:  boardID,
		ColumnID: from.ID,
		TaskID:   taskID,
		Body:     body,
	})
	if err != nil {
		return cli.Fail(formatter, "TASK_UPDATE_ERROR", err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(t)
	}

	fmt.Printf("✓ Task %s updated successfully\n", t.ID)
	if dest.ID != from.ID {
		fmt.Printf("  Moved: %s → %s\n", from.Title, dest.Title)
	}
	return nil
}
