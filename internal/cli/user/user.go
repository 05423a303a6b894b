// Package user holds the 'kanbo user' commands
package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(GetCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// targetID is the positional or --id user, defaulting to the signed-in user
func targetID(c *cli.CLI, args *handler.Arguments) string {
	if len(args.Args) > 0 && args.Args[0] != "" {
		return args.Args[0]
	}
	if id := args.GetString("id", ""); id != "" {
		return id
	}
	return c.App.Store.State().User.User.UserID
}

func renderUser(f *cli.OutputFormatter, result any) error {
	u, ok := result.(*models.UserResponse)
	if f.Quiet || f.JSON || !ok {
		return f.Success(result)
	}
	fmt.Printf("%s (%s)\n", u.Name, u.Login)
	fmt.Printf("  ID: %s\n", u.ID)
	return nil
}
