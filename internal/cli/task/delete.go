package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task",
		Long: `Delete a task by ID (requires confirmation unless --force, --json or --quiet).

Examples:
  kanbo task delete <task-id> --column=Todo
  kanbo task delete --id=<task-id> --column=<column-id> --force
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Task ID")
	cmd.Flags().String("column", "", "Column ID or title holding the task (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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
	force, _ := cmd.Flags().GetBool("force")
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
	ref := models.RequestGetTask{BoardID: boardID, ColumnID: col.ID, TaskID: taskID}
	t, err := cliInstance.App.Store.GetTask(ctx, ref)
	if err != nil {
		return cli.Fail(formatter, "TASK_NOT_FOUND", err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd.InOrStdin(), fmt.Sprintf("Delete task '%s'?", t.Title)) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.Store.DeleteTask(ctx, ref); err != nil {
		return cli.Fail(formatter, "DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]string{"task_id": taskID})
	}

	fmt.Printf("✓ Task '%s' deleted successfully\n", t.Title)
	return nil
}
