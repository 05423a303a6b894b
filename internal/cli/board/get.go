package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
	"github.com/thenoetrevino/kanbo/internal/cli/styles"
	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/store"
)

// GetCmd returns the board get subcommand
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [board-id]",
		Short: "Show a board with its columns and tasks",
		Long: `Load a board, its columns, and every column's tasks.

Examples:
  kanbo board get <board-id>
  kanbo board get --id=<board-id> --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGet,
	}

	cmd.Flags().String("id", "", "Board ID")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	boardID, err := handler.NewFlagParser(cmd, formatter).ID(args, "id")
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

	if err := cliInstance.App.Store.LoadBoard(ctx, boardID); err != nil {
		return cli.Fail(formatter, "BOARD_NOT_FOUND", err)
	}

	st := cliInstance.App.Store.State()
	b := loadedBoard(st)

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(b)
	}

	fmt.Println(styles.BoardCard(b, st.Task.Tasks))
	return nil
}

// loadedBoard is the current board with the loaded columns and their tasks nested in
func loadedBoard(st store.State) models.Board {
	var b models.Board
	if st.Board.Current != nil {
		b = *st.Board.Current
	}
	b.Columns = make([]models.Column, 0, len(st.Column.Columns))
	for _, col := range st.Column.Columns {
		col.Tasks = store.ColumnTasks(st, col.ID)
		b.Columns = append(b.Columns, col)
	}
	return b
}
