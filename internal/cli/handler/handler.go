// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thenoetrevino/kanbo/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command against an initialized CLI
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Execute calls f
func (f HandlerFunc) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return f(ctx, c, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// CommandConfig holds configuration for command execution
type CommandConfig struct {
	// ErrorCode is reported when the handler fails
	ErrorCode string
	// Public commands run without a stored token
	Public bool
	// Render replaces formatter.Success for the handler's result
	Render func(f *cli.OutputFormatter, result any) error
}

// Command wraps common command execution logic.
// Returns a cobra RunE compatible function.
func Command(h Handler, cfg CommandConfig) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := cli.Formatter(cmd)

		c, err := cli.Setup(ctx, formatter)
		if err != nil {
			return err
		}
		defer cli.Close(c)

		if !cfg.Public {
			if err := cli.RequireAuth(c, formatter); err != nil {
				return err
			}
		}

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}

		result, err := h.Execute(ctx, c, arguments)
		if err != nil {
			if cli.ExitCode(err) == cli.ExitUsage {
				return err
			}
			return cli.Fail(formatter, cfg.ErrorCode, err)
		}

		if cfg.Render != nil {
			return cfg.Render(formatter, result)
		}
		return formatter.Success(result)
	}
}

// parseFlagsToMap converts explicitly set cobra flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	if v, ok := a.Flags[name].(string); ok {
		return v
	}
	return defaultVal
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	if v, ok := a.Flags[name].(int); ok {
		return v
	}
	return defaultVal
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, _ := a.Flags[name].(bool)
	return v
}

// Has reports whether the flag was set explicitly
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}
