package setup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/config"
)

// PathCmd returns the setup path subcommand
func PathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print where the config file and data directory live",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.Formatter(cmd)

			configPath, err := config.Path()
			if err != nil {
				return fmt.Errorf("failed to locate config: %w", err)
			}
			dataDir, err := config.DataDir()
			if err != nil {
				return fmt.Errorf("failed to locate data directory: %w", err)
			}

			if formatter.JSON {
				return formatter.Success(map[string]string{"config": configPath, "data": dataDir})
			}
			fmt.Printf("config: %s\n", configPath)
			fmt.Printf("data:   %s\n", dataDir)
			return nil
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}
