package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/store"
)

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE:  runLogout,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.Setup(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.Close(cliInstance)

	wasSignedIn := store.IsAuthenticated(cliInstance.App.Store.State())
	cliInstance.App.Store.Logout(ctx)

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]bool{"signed_out": wasSignedIn})
	}

	if !wasSignedIn {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Println("✓ Signed out")
	return nil
}
