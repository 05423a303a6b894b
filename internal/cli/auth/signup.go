package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// SignupCmd returns the signup command
func SignupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Long: `Register a new account. Sign in afterwards with 'kanbo login'.

Examples:
  kanbo signup --name="Alice" --login=alice     # prompts for the password
  kanbo signup --name="Alice" --login=alice --password=secret --json
`,
		RunE: runSignup,
	}

	cmd.Flags().String("name", "", "Display name (required)")
	cmd.Flags().String("login", "", "Account login (required)")
	cmd.Flags().String("password", "", "Password (use - for stdin, prompts when omitted)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSignup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	login, _ := cmd.Flags().GetString("login")
	password, _ := cmd.Flags().GetString("password")

	password, err := cli.ReadText(password, cmd.InOrStdin())
	if err != nil {
		return cli.Usage(formatter, err.Error(), "")
	}
	if password == "" && login != "" && !cmd.Flags().Changed("password") && isTerminal() {
		if password, err = promptPassword("Choose a password"); err != nil {
			return cli.Usage(formatter, err.Error(), "")
		}
	}

	req := models.SignUpRequest{Name: name, Login: login, Password: password}
	if err := req.Validate(); err != nil {
		return cli.Usage(formatter, err.Error(), "Usage: kanbo signup --name=<name> --login=<login> --password=<password>")
	}

	cliInstance, err := cli.Setup(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.Close(cliInstance)

	registered, err := cliInstance.App.Store.SignUp(ctx, req)
	if err != nil {
		return cli.Fail(formatter, "SIGNUP_FAILED", err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(registered)
	}

	fmt.Printf("✓ Account '%s' created (ID: %s)\n", registered.Login, registered.ID)
	fmt.Println("  Sign in with: kanbo login --login=" + registered.Login)
	return nil
}
