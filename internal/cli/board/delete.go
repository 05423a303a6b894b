package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [board-id]",
		Short: "Delete a board",
		Long: `Delete a board with all of its columns and tasks
(requires confirmation unless --force, --json or --quiet).

Examples:
  kanbo board delete <board-id>
  kanbo board delete --id=<board-id> --force
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Board ID")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	boardID, err := handler.NewFlagParser(cmd, formatter).ID(args, "id")
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.Setup(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.Close(cliInstance)

	if err := cli.RequireAuth(cliInstance, formatter); err != nil {
		return err
	}

	b, err := cliInstance.App.Store.GetBoard(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, "BOARD_NOT_FOUND", err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Println("⚠ Warning: Deleting a board deletes all of its columns and tasks")
		if !cli.Confirm(cmd.InOrStdin(), fmt.Sprintf("Delete board '%s'?", b.Title)) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.Store.DeleteBoard(ctx, boardID); err != nil {
		return cli.Fail(formatter, "DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]string{"board_id": boardID})
	}

	fmt.Printf("✓ Board '%s' deleted successfully\n", b.Title)
	return nil
}
