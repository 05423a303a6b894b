package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/styles"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the columns of a board",
		Long: `List the columns of a board in display order.

Examples:
  kanbo column list --board=<board-id>
  kanbo column list --json
  kanbo column list --quiet
`,
		RunE: runList,
	}

	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

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

	cols, err := cliInstance.App.Store.GetAllColumns(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, "COLUMN_LIST_ERROR", err)
	}
	// the store keeps them sorted by order
	cols = cliInstance.App.Store.State().Column.Columns

	if formatter.Quiet {
		cli.PrintIDs(cols)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(cols)
	}

	if len(cols) == 0 {
		fmt.Println("No columns found")
		return nil
	}
	fmt.Printf("Columns of board %s:\n\n", boardID)
	for _, col := range cols {
		fmt.Printf("  %d. %s %s\n", col.Order, col.Title, styles.SubtitleStyle.Render("("+col.ID+")"))
	}
	return nil
}
