package user

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
)

// GetCmd returns the user get subcommand
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [user-id]",
		Short: "Show a user (defaults to you)",
		Args:  cobra.MaximumNArgs(1),
		RunE: handler.Command(handler.HandlerFunc(getUser), handler.CommandConfig{
			ErrorCode: "USER_NOT_FOUND",
			Render:    renderUser,
		}),
	}

	cmd.Flags().String("id", "", "User ID")
	cli.AddOutputFlags(cmd)

	return cmd
}

func getUser(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	return c.App.Store.GetUserByID(ctx, targetID(c, args))
}
