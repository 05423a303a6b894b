package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [column-id]",
		Short: "Delete a column",
		Long: `Delete a column by ID (requires confirmation unless --force, --json or --quiet).

Warning: the server deletes the column's tasks with it.

Examples:
  kanbo column delete <column-id>
  kanbo column delete --id=<column-id> --force
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Column ID")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	columnID, err := handler.NewFlagParser(cmd, formatter).ID(args, "id")
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

	col, err := findColumn(ctx, cliInstance, formatter, boardID, columnID)
	if err != nil {
		return err
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Println("⚠ Warning: Deleting a column deletes its tasks")
		if !cli.Confirm(cmd.InOrStdin(), fmt.Sprintf("Delete column '%s'?", col.Title)) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.Store.DeleteColumn(ctx,
		models.RequestGetColumn{BoardID: boardID, ColumnID: columnID}); err != nil {
		return cli.Fail(formatter, "DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]string{"column_id": columnID})
	}

	fmt.Printf("✓ Column '%s' deleted successfully\n", col.Title)
	return nil
}
