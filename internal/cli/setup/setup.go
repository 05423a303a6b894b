package setup

import (
	"github.com/spf13/cobra"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Inspect and change kanbo's configuration",
		Long: `Show where kanbo keeps its configuration and data, print the
effective configuration, or change a single setting in the config file.`,
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SetCmd())
	cmd.AddCommand(PathCmd())

	return cmd
}
