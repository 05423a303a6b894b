// Package column holds the 'kanbo column' commands
package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage the columns of a board",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// findColumn loads the board's columns and returns the one with id
func findColumn(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter, boardID, id string) (models.Column, error) {
	cols, err := c.App.Store.GetAllColumns(ctx, boardID)
	if err != nil {
		return models.Column{}, cli.Fail(f, "BOARD_NOT_FOUND", err)
	}
	for _, col := range cols {
		if col.ID == id {
			return col, nil
		}
	}
	msg := fmt.Sprintf("column %s not found on board %s", id, boardID)
	if fmtErr := f.ErrorWithSuggestion("COLUMN_NOT_FOUND", msg,
		"Use 'kanbo column list' to see available columns"); fmtErr != nil {
		return models.Column{}, fmtErr
	}
	return models.Column{}, cli.Exit(cli.ExitNotFound, fmt.Errorf("%s", msg))
}
