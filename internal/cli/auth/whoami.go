package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/cli/styles"
	"github.com/thenoetrevino/kanbo/internal/store"
)

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Long: `Show the user remembered from the last sign in.
Pass --refresh to reload the profile from the server.`,
		RunE: runWhoami,
	}

	cmd.Flags().Bool("refresh", false, "Reload the profile from the server")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	refresh, _ := cmd.Flags().GetBool("refresh")

	cliInstance, err := cli.Setup(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.Close(cliInstance)

	if err := cli.RequireAuth(cliInstance, formatter); err != nil {
		return err
	}

	s := cliInstance.App.Store
	user := store.SelectUser(s.State())
	if refresh && user.UserID != "" {
		profile, err := s.GetUserByID(ctx, user.UserID)
		if err != nil {
			return cli.Fail(formatter, "USER_NOT_FOUND", err)
		}
		s.Dispatch(ctx, store.SetUser{User: profile.ToUser()})
		user = store.SelectUser(s.State())
	}

	if formatter.Quiet {
		fmt.Println(user.UserID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(user)
	}

	fmt.Println(styles.Field("Name", user.UserName))
	fmt.Println(styles.Field("Login", user.Login))
	fmt.Println(styles.Field("ID", user.UserID))
	return nil
}
