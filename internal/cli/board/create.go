package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new board.

Examples:
  kanbo board create --title="Roadmap"
  kanbo board create --title="Roadmap" --description="Q3 goals" --json

  # Quiet mode for bash capture
  BOARD_ID=$(kanbo board create --title="Roadmap" --quiet)
`,
		RunE: handler.Command(handler.HandlerFunc(createBoard), handler.CommandConfig{
			ErrorCode: "BOARD_CREATE_ERROR",
			Render:    renderBoard("created"),
		}),
	}

	cmd.Flags().String("title", "", "Board title (required)")
	cmd.Flags().String("description", "", "Board description")
	cli.AddOutputFlags(cmd)

	return cmd
}

func createBoard(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	req := models.CreateBoardRequest{
		Title:       args.GetString("title", ""),
		Description: args.GetString("description", ""),
	}
	if err := req.Validate(); err != nil {
		return nil, cli.Usage(cli.Formatter(args.GetCmd()), err.Error(), "Pass --title")
	}
	return c.App.Store.CreateBoard(ctx, req)
}

// renderBoard prints a one-line confirmation for a created or updated board
func renderBoard(verb string) func(*cli.OutputFormatter, any) error {
	return func(f *cli.OutputFormatter, result any) error {
		b, ok := result.(*models.Board)
		if f.Quiet || f.JSON || !ok {
			return f.Success(result)
		}
		fmt.Printf("✓ Board '%s' %s successfully (ID: %s)\n", b.Title, verb, b.ID)
		if b.Description != "" {
			fmt.Printf("  Description: %s\n", b.Description)
		}
		return nil
	}
}
