package board

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// UpdateCmd returns the board update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [board-id]",
		Short: "Update a board's title or description",
		Long: `Update a board. Fields you leave out keep their value.

Examples:
  kanbo board update <board-id> --title="Roadmap 2"
  kanbo board update --id=<board-id> --description=""
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(handler.HandlerFunc(updateBoard), handler.CommandConfig{
			ErrorCode: "BOARD_UPDATE_ERROR",
			Render:    renderBoard("updated"),
		}),
	}

	cmd.Flags().String("id", "", "Board ID")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cli.AddOutputFlags(cmd)

	return cmd
}

func updateBoard(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	formatter := cli.Formatter(args.GetCmd())
	id, err := handler.NewFlagParser(args.GetCmd(), formatter).ID(args.Args, "id")
	if err != nil {
		return nil, err
	}
	if !args.Has("title") && !args.Has("description") {
		return nil, cli.Usage(formatter, "nothing to update", "Pass --title and/or --description")
	}

	current, err := c.App.Store.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	req := models.UpdateBoardRequest{
		Title:       args.GetString("title", current.Title),
		Description: args.GetString("description", current.Description),
	}
	if req.Title == "" {
		return nil, cli.Usage(formatter, models.MsgTitleRequired, "")
	}
	return c.App.Store.UpdateBoard(ctx, id, req)
}
