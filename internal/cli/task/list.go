package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/styles"
	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/store"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks on a board",
		Long: `List the tasks of one column, or of every column on the board.

Examples:
  kanbo task list --board=<board-id>
  kanbo task list --column="In Progress" --json
  kanbo task list --quiet
`,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Column ID or title (default: every column)")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	columnRef, _ := cmd.Flags().GetString("column")

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

	if _, err := cliInstance.App.Store.GetAllColumns(ctx, boardID); err != nil {
		return cli.Fail(formatter, "BOARD_NOT_FOUND", err)
	}
	cols := cliInstance.App.Store.State().Column.Columns
	if columnRef != "" {
		col, err := boardColumn(ctx, cliInstance, formatter, boardID, columnRef)
		if err != nil {
			return err
		}
		cols = []models.Column{col}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, col := range cols {
		g.Go(func() error {
			_, err := cliInstance.App.Store.GetAllTasks(gctx, models.RequestGetAllTasks{BoardID: boardID, ColumnID: col.ID})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return cli.Fail(formatter, "TASK_LIST_ERROR", err)
	}

	st := cliInstance.App.Store.State()
	var all []models.Task
	for _, col := range cols {
		all = append(all, store.ColumnTasks(st, col.ID)...)
	}

	if formatter.Quiet {
		cli.PrintIDs(all)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(all)
	}

	if len(all) == 0 {
		fmt.Println("No tasks found")
		return nil
	}
	for _, col := range cols {
		tasks := store.ColumnTasks(st, col.ID)
		fmt.Printf("%s %s\n", styles.TitleStyle.Render(col.Title), styles.SubtitleStyle.Render(fmt.Sprintf("(%d)", len(tasks))))
		for _, t := range tasks {
			fmt.Printf("  • %s %s\n", t.Title, styles.SubtitleStyle.Render("("+t.ID+")"))
		}
	}
	return nil
}
