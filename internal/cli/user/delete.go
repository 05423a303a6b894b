package user

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/handler"
)

// DeleteCmd returns the user delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [user-id]",
		Short: "Delete an account (defaults to you)",
		Long: `Delete an account (requires confirmation unless --force, --json or --quiet).
Deleting your own account signs you out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(handler.HandlerFunc(deleteUser), handler.CommandConfig{
			ErrorCode: "USER_DELETE_ERROR",
			Render:    renderDeleted,
		}),
	}

	cmd.Flags().String("id", "", "User ID")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

type deleted struct {
	UserID    string `json:"user_id"`
	SignedOut bool   `json:"signed_out"`
	Cancelled bool   `json:"cancelled,omitempty"`
}

func deleteUser(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	cmd := args.GetCmd()
	formatter := cli.Formatter(cmd)
	id := targetID(c, args)
	self := id == c.App.Store.State().User.User.UserID

	if !args.GetBool("force") && !formatter.Quiet && !formatter.JSON {
		prompt := fmt.Sprintf("Delete user %s?", id)
		if self {
			prompt = "Delete your own account? You will be signed out."
		}
		if !cli.Confirm(cmd.InOrStdin(), prompt) {
			return deleted{UserID: id, Cancelled: true}, nil
		}
	}

	if err := c.App.Store.DeleteUser(ctx, id); err != nil {
		return nil, err
	}
	return deleted{UserID: id, SignedOut: self}, nil
}

func renderDeleted(f *cli.OutputFormatter, result any) error {
	d := result.(deleted)
	if f.Quiet {
		return nil
	}
	if f.JSON {
		return f.Success(d)
	}
	if d.Cancelled {
		fmt.Println("Cancelled")
		return nil
	}
	fmt.Printf("✓ User %s deleted successfully\n", d.UserID)
	if d.SignedOut {
		fmt.Println("  You have been signed out")
	}
	return nil
}
