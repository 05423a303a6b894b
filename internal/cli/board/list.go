package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/styles"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards visible to the signed-in user.

Examples:
  kanbo board list
  kanbo board list --json
  kanbo board list --quiet
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.Setup(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.Close(cliInstance)

	if err := cli.RequireAuth(cliInstance, formatter); err != nil {
		return err
	}

	boards, err := cliInstance.App.Store.GetAllBoards(ctx)
	if err != nil {
		return cli.Fail(formatter, "BOARD_LIST_ERROR", err)
	}

	if formatter.Quiet {
		cli.PrintIDs(boards)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(boards)
	}

	if len(boards) == 0 {
		fmt.Println("No boards found")
		fmt.Println("Create one with: kanbo board create --title=\"My Board\"")
		return nil
	}
	fmt.Printf("Found %d board(s):\n\n", len(boards))
	for _, b := range boards {
		fmt.Printf("  %s %s\n", styles.TitleStyle.Render(b.Title), styles.SubtitleStyle.Render("("+b.ID+")"))
		if b.Description != "" {
			fmt.Printf("    %s\n", b.Description)
		}
	}
	return nil
}
