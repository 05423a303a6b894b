package setup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/config"
)

// SetCmd returns the setup set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting in the config file",
		Long: `Change one setting in the config file, creating the file if needed.

Keys: ` + strings.Join(config.SettableKeys, ", ") + `

Examples:
  kanbo setup set api_url https://kanban.example.com
  kanbo setup set storage.backend sqlite
  kanbo setup set theme.preset monochrome
`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	key, value := args[0], args[1]

	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to locate config: %w", err)
	}

	if err := config.Edit(path, key, value); err != nil {
		if errors.Is(err, config.ErrUnknownKey) {
			return cli.Usage(formatter, err.Error(), "Valid keys: "+strings.Join(config.SettableKeys, ", "))
		}
		return cli.Usage(formatter, err.Error(), "")
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]string{"key": key, "value": value, "path": path})
	}
	fmt.Printf("✓ Set %s = %s in %s\n", key, value, path)
	return nil
}
