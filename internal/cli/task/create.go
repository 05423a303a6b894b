package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task in a column (the board's first column by default).

Examples:
  # Simple task (human-readable output)
  kanbo task create --title="Fix bug" --board=<board-id>

  # JSON output for agents
  kanbo task create --title="Fix bug" --column="In Progress" --json

  # Quiet mode for bash capture
  TASK_ID=$(kanbo task create --title="Fix bug" --quiet)

  # Description from stdin
  cat notes.md | kanbo task create --title="Write docs" --description=-
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("column", "", "Column ID or title (defaults to first column)")
	cmd.Flags().String("user", "", "Assignee user ID (defaults to you)")
	cmd.Flags().Int("order", 0, "Task position (0 = after the last task)")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	columnRef, _ := cmd.Flags().GetString("column")
	userID, _ := cmd.Flags().GetString("user")
	order, _ := cmd.Flags().GetInt("order")

	description, err := cli.ReadText(description, cmd.InOrStdin())
	if err != nil {
		return cli.Usage(formatter, err.Error(), "")
	}
	body := models.TaskBody{Title: title, Description: description, Order: order}
	if err := body.Validate(); err != nil {
		return cli.Usage(formatter, err.Error(), "Pass --title")
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

	col, err := boardColumn(ctx, cliInstance, formatter, boardID, columnRef)
	if err != nil {
		return err
	}

	if userID == "" {
		userID = cliInstance.App.Store.State().User.User.UserID
	}
	body.UserID = userID
	body.BoardID = boardID
	body.ColumnID = col.ID

	if body.Order == 0 {
		existing, err := cliInstance.App.Store.GetAllTasks(ctx, models.RequestGetAllTasks{BoardID: boardID, ColumnID: col.ID})
		if err != nil {
			return cli.Fail(formatter, "TASK_LIST_ERROR", err)
		}
		body.Order = nextOrder(existing)
	}

	t, err := cliInstance.App.Store.CreateTask(ctx, models.RequestCreateTask{BoardID: boardID, ColumnID: col.ID, Body: body})
	if err != nil {
		return cli.Fail(formatter, "TASK_CREATE_ERROR", err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(t)
	}

	fmt.Printf("✓ Task '%s' created successfully (ID: %s)\n", t.Title, t.ID)
	fmt.Printf("  Column: %s\n", col.Title)
	return nil
}
