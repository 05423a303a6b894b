// Package task holds the 'kanbo task' commands
package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(GetCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// resolveColumn finds a column by ID or, case-insensitively, by title
func resolveColumn(cols []models.Column, ref string) (models.Column, bool) {
	for _, col := range cols {
		if col.ID == ref {
			return col, true
		}
	}
	for _, col := range cols {
		if strings.EqualFold(col.Title, ref) {
			return col, true
		}
	}
	return models.Column{}, false
}

// boardColumn loads the board's columns and resolves ref among them.
// An empty ref selects the first column.
func boardColumn(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter, boardID, ref string) (models.Column, error) {
	if _, err := c.App.Store.GetAllColumns(ctx, boardID); err != nil {
		return models.Column{}, cli.Fail(f, "BOARD_NOT_FOUND", err)
	}
	cols := c.App.Store.State().Column.Columns
	if len(cols) == 0 {
		if fmtErr := f.ErrorWithSuggestion("NO_COLUMNS", "board has no columns",
			"Create one with 'kanbo column create --title=<title> --board="+boardID+"'"); fmtErr != nil {
			return models.Column{}, fmtErr
		}
		return models.Column{}, cli.Exit(cli.ExitValidation, fmt.Errorf("board %s has no columns", boardID))
	}
	if ref == "" {
		return cols[0], nil
	}
	col, ok := resolveColumn(cols, ref)
	if !ok {
		msg := fmt.Sprintf("column %q not found on board %s", ref, boardID)
		if fmtErr := f.ErrorWithSuggestion("COLUMN_NOT_FOUND", msg,
			"Use 'kanbo column list' to see available columns"); fmtErr != nil {
			return models.Column{}, fmtErr
		}
		return models.Column{}, cli.Exit(cli.ExitNotFound, fmt.Errorf("%s", msg))
	}
	return col, nil
}

// nextOrder is one past the highest order among tasks
func nextOrder(tasks []models.Task) int {
	highest := 0
	for _, t := range tasks {
		highest = max(highest, t.Order)
	}
	return highest + 1
}
