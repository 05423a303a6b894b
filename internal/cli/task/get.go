package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
	"github.com/thenoetrevino/kanbo/internal/cli/styles"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// GetCmd returns the task get subcommand
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [task-id]",
		Short: "Show a task",
		Long: `Show a task with its description rendered as markdown.

Examples:
  kanbo task get <task-id> --column=Todo
  kanbo task get --id=<task-id> --column=<column-id> --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGet,
	}

	cmd.Flags().String("id", "", "Task ID")
	cmd.Flags().String("column", "", "Column ID or title holding the task (required)")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	taskID, err := parser.ID(args, "id")
	if err != nil {
		return err
	}
	columnRef, err := parser.String("column")
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

	col, err := boardColumn(ctx, cliInstance, formatter, boardID, columnRef)
	if err != nil {
		return err
	}

	t, err := cliInstance.App.Store.GetTask(ctx, models.RequestGetTask{BoardID: boardID, ColumnID: col.ID, TaskID: taskID})
	if err != nil {
		return cli.Fail(formatter, "TASK_NOT_FOUND", err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(t)
	}

	fmt.Println(styles.TaskCard(*t))
	return nil
}
