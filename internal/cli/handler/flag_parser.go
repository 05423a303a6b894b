package handler

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd       *cobra.Command
	formatter *cli.OutputFormatter
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command, formatter *cli.OutputFormatter) *FlagParser {
	return &FlagParser{
		cmd:       cmd,
		formatter: formatter,
	}
}

// ID returns the resource ID from the first positional argument or the
// named flag, failing with ExitUsage when neither is set.
func (p *FlagParser) ID(args []string, flagName string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	id, _ := p.cmd.Flags().GetString(flagName)
	if id == "" {
		return "", cli.Usage(p.formatter,
			fmt.Sprintf("%s is required", flagName),
			fmt.Sprintf("Usage: %s", p.cmd.UseLine()))
	}
	return id, nil
}

// String extracts a required string flag
func (p *FlagParser) String(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if value == "" {
		return "", cli.Usage(p.formatter, fmt.Sprintf("--%s is required", flagName), "")
	}
	return value, nil
}

// Order extracts a non-negative --order style flag
func (p *FlagParser) Order(flagName string) (int, error) {
	order, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if order < 0 {
		return 0, cli.Usage(p.formatter, fmt.Sprintf("--%s must not be negative", flagName), "")
	}
	return order, nil
}
