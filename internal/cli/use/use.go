// Package use holds all cli commands related to setting contextual information
// e.g., kanbo use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings for the current shell",
		Long: `Set and manage contextual information for the current shell session.

The 'use' command sets context that applies to subsequent commands,
so you do not have to repeat flags like --board.

Examples:
  eval $(kanbo use board <board-id>)  # Use a board
  eval $(kanbo use board --clear)     # Clear board context
  kanbo use board --show              # Show current board`,
	}

	cmd.AddCommand(BoardCmd())

	return cmd
}
