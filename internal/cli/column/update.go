package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// UpdateCmd returns the column update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [column-id]",
		Short: "Rename or reorder a column",
		Long: `Update a column's title or order. Fields you leave out keep their value.

Examples:
  kanbo column update <column-id> --title="Doing"
  kanbo column update --id=<column-id> --order=1 --board=<board-id>
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Column ID")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().Int("order", 0, "New position")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	columnID, err := parser.ID(args, "id")
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("order") {
		return cli.Usage(formatter, "nothing to update", "Pass --title and/or --order")
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

	current, err := findColumn(ctx, cliInstance, formatter, boardID, columnID)
	if err != nil {
		return err
	}

	body := models.UpdateColumnRequest{Title: current.Title, Order: current.Order}
	if title, _ := cmd.Flags().GetString("title"); cmd.Flags().Changed("title") {
		if title == "" {
			return cli.Usage(formatter, models.MsgTitleRequired, "")
		}
		body.Title = title
	}
	if cmd.Flags().Changed("order") {
		body.Order = order
	}

	col, err := cliInstance.App.Store.UpdateColumn(ctx,
		models.RequestGetColumn{BoardID: boardID, ColumnID: columnID}, body)
	if err != nil {
		return cli.Fail(formatter, "COLUMN_UPDATE_ERROR", err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(col)
	}

	fmt.Printf("✓ Column %s updated successfully\n", col.ID)
	fmt.Printf("  Title: %s\n", col.Title)
	fmt.Printf("  Order: %d\n", col.Order)
	return nil
}
