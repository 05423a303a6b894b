package user

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// ListCmd returns the user list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: handler.Command(handler.HandlerFunc(listUsers), handler.CommandConfig{
			ErrorCode: "USER_LIST_ERROR",
			Render:    renderUsers,
		}),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func listUsers(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	return c.App.Store.GetAllUsers(ctx)
}

func renderUsers(f *cli.OutputFormatter, result any) error {
	users, _ := result.([]models.UserResponse)
	if f.Quiet {
		cli.PrintIDs(users)
		return nil
	}
	if f.JSON {
		return f.Success(users)
	}
	if len(users) == 0 {
		fmt.Println("No users found")
		return nil
	}
	fmt.Printf("Found %d user(s):\n\n", len(users))
	for _, u := range users {
		fmt.Printf("  %-20s %-16s %s\n", u.Name, u.Login, u.ID)
	}
	return nil
}
