package use

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/store"
)

// BoardCmd returns the use board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [board-id]",
		Short: "Set board context for current shell session",
		Long: `Set the current board context using environment variables.
This command outputs shell commands that should be evaluated:

  eval $(kanbo use board <board-id>)   # Use a board
  eval $(kanbo use board --clear)      # Clear board context
  kanbo use board --show               # Show current board

The KANBO_BOARD environment variable will be set in your current shell
session only. The --board flag on other commands takes precedence over
this environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseBoard,
	}

	cmd.Flags().Bool("clear", false, "Clear the current board context")
	cmd.Flags().Bool("show", false, "Show the current board context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	formatter := &cli.OutputFormatter{}

	if showFlag {
		return showCurrentBoard(cmd)
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(os.Stderr, "Would clear %s\n", cli.BoardEnv)
			return nil
		}
		fmt.Printf("unset %s\n", cli.BoardEnv)
		fmt.Fprintf(os.Stderr, "Cleared board context\n")
		return nil
	}

	if len(args) == 0 {
		return cli.Usage(formatter, "board ID required", "Usage: eval $(kanbo use board <board-id>)")
	}
	boardID := args[0]

	cliInstance, err := cli.Setup(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.Close(cliInstance)

	if err := cli.RequireAuth(cliInstance, formatter); err != nil {
		return err
	}

	b, err := cliInstance.App.Store.GetBoard(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, "BOARD_NOT_FOUND", err)
	}

	// stdout is for eval
	if dryRun {
		fmt.Fprintf(os.Stderr, "Would set %s=%s (%s)\n", cli.BoardEnv, b.ID, b.Title)
		return nil
	}

	fmt.Printf("export %s=%s\n", cli.BoardEnv, b.ID)
	fmt.Fprintf(os.Stderr, "Now using board %s: %s\n", b.ID, b.Title)
	return nil
}

func showCurrentBoard(cmd *cobra.Command) error {
	current := os.Getenv(cli.BoardEnv)
	if current == "" {
		fmt.Println("No board context set")
		fmt.Println("Use 'eval $(kanbo use board <board-id>)' to set one")
		return nil
	}

	formatter := &cli.OutputFormatter{}
	cliInstance, err := cli.Setup(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer cli.Close(cliInstance)

	b, err := cliInstance.App.Store.GetBoard(cmd.Context(), current)
	if err != nil {
		fmt.Printf("Current board: %s (%s)\n", current, store.ErrorMessage(err))
		return nil
	}

	fmt.Printf("Current board: %s (%s)\n", b.ID, b.Title)
	return nil
}
