package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Long: `Sign in with your login and password. The token is stored so later
commands and the TUI stay signed in until 'kanbo logout'.

Examples:
  kanbo login --login=alice              # prompts for the password
  echo "$PASS" | kanbo login --login=alice --password=-
  kanbo login --login=alice --password=secret --json
`,
		RunE: runLogin,
	}

	cmd.Flags().String("login", "", "Account login (required)")
	cmd.Flags().String("password", "", "Password (use - for stdin, prompts when omitted)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	login, _ := cmd.Flags().GetString("login")
	password, _ := cmd.Flags().GetString("password")

	password, err := cli.ReadText(password, cmd.InOrStdin())
	if err != nil {
		return cli.Usage(formatter, err.Error(), "")
	}
	if password == "" && login != "" && !cmd.Flags().Changed("password") && isTerminal() {
		if password, err = promptPassword("Password for " + login); err != nil {
			return cli.Usage(formatter, err.Error(), "")
		}
	}

	req := models.SignInRequest{Login: login, Password: password}
	if err := req.Validate(); err != nil {
		return cli.Usage(formatter, err.Error(), "Usage: kanbo login --login=<login> --password=<password>")
	}

	cliInstance, err := cli.Setup(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.Close(cliInstance)

	if _, err := cliInstance.App.Store.SignIn(ctx, req); err != nil {
		return cli.Fail(formatter, "LOGIN_FAILED", err)
	}

	user := cliInstance.App.Store.State().User.User
	if formatter.Quiet {
		fmt.Println(user.UserID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(user)
	}

	fmt.Printf("✓ Signed in as %s\n", displayName(user))
	return nil
}

// displayName is "Name (login)", or just the login before the profile loads
func displayName(u models.User) string {
	if u.UserName == "" {
		return u.Login
	}
	return fmt.Sprintf("%s (%s)", u.UserName, u.Login)
}
