package setup

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/kanbo/internal/cli"
	"github.com/thenoetrevino/kanbo/internal/config"
)

// ShowCmd returns the setup show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration kanbo runs with: the config file merged with
defaults and environment overrides (KANBO_API_URL, KANBO_STORAGE, ...).`,
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	cfg, err := config.Load()
	if err != nil {
		if fmtErr := formatter.Error("CONFIG_ERROR", err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Exit(cli.ExitDataErr, err)
	}

	if formatter.JSON {
		return formatter.Success(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
