package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long: `Create a new column on a board.

Examples:
  # Append a column after the existing ones
  kanbo column create --board=<board-id> --title="Review"

  # Quiet mode for bash capture
  COLUMN_ID=$(kanbo column create --title="Review" --quiet)

  # Explicit position
  kanbo column create --title="Backlog" --order=1
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Column title (required)")
	cmd.Flags().Int("order", 0, "Column position (0 = after the last column)")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	order, _ := cmd.Flags().GetInt("order")
	req := models.CreateColumnRequest{Title: title, Order: order}
	if err := req.Validate(); err != nil {
		return cli.Usage(formatter, err.Error(), "Pass --title")
	}
	if order < 0 {
		return cli.Usage(formatter, "--order must not be negative", "")
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

	if req.Order == 0 {
		cols, err := cliInstance.App.Store.GetAllColumns(ctx, boardID)
		if err != nil {
			return cli.Fail(formatter, "BOARD_NOT_FOUND", err)
		}
		req.Order = nextOrder(cols)
	}

	col, err := cliInstance.App.Store.CreateColumn(ctx, boardID, req)
	if err != nil {
		return cli.Fail(formatter, "COLUMN_CREATE_ERROR", err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(col)
	}

	fmt.Printf("✓ Column '%s' created successfully (ID: %s)\n", col.Title, col.ID)
	fmt.Printf("  Board: %s\n", boardID)
	fmt.Printf("  Order: %d\n", col.Order)
	return nil
}

// nextOrder is one past the highest order in cols
func nextOrder(cols []models.Column) int {
	highest := 0
	for _, col := range cols {
		highest = max(highest, col.Order)
	}
	return highest + 1
}
