package user

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// UpdateCmd returns the user update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [user-id]",
		Short: "Update a user's name, login and password (defaults to you)",
		Long: `Update an account. The server replaces name, login and password
together, so --password is always required. Name and login keep their
current value when left out.

Examples:
  kanbo user update --name="Alice Smith" --password=secret
  echo "$PASS" | kanbo user update <user-id> --login=alice2 --password=-
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(handler.HandlerFunc(updateUser), handler.CommandConfig{
			ErrorCode: "USER_UPDATE_ERROR",
			Render:    renderUser,
		}),
	}

	cmd.Flags().String("id", "", "User ID")
	cmd.Flags().String("name", "", "New display name")
	cmd.Flags().String("login", "", "New login")
	cmd.Flags().String("password", "", "Password (required, use - for stdin)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func updateUser(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	cmd := args.GetCmd()
	formatter := cli.Formatter(cmd)

	password, err := cli.ReadText(args.GetString("password", ""), cmd.InOrStdin())
	if err != nil {
		return nil, cli.Usage(formatter, err.Error(), "")
	}
	if password == "" {
		return nil, cli.Usage(formatter, models.MsgPasswordRequired, "Pass --password")
	}

	id := targetID(c, args)
	current, err := c.App.Store.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req := models.SignUpRequest{
		Name:     args.GetString("name", current.Name),
		Login:    args.GetString("login", current.Login),
		Password: password,
	}
	if err := req.Validate(); err != nil {
		return nil, cli.Usage(formatter, err.Error(), "")
	}
	return c.App.Store.UpdateUser(ctx, id, req)
}
