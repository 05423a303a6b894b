package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli/auth"
	"github.com/thenoetrevino/kanbo/internal/cli/board"
	"github.com/thenoetrevino/kanbo/internal/cli/column"
	"github.com/thenoetrevino/kanbo/internal/cli/setup"
	"github.com/thenoetrevino/kanbo/internal/cli/task"
	"github.com/thenoetrevino/kanbo/internal/cli/tutorial"
	"github.com/thenoetrevino/kanbo/internal/cli/use"
	"github.com/thenoetrevino/kanbo/internal/cli/user"
	"github.com/thenoetrevino/kanbo/internal/config"
	"github.com/thenoetrevino/kanbo/internal/launcher"
	"github.com/thenoetrevino/kanbo/internal/logging"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=..."
var Version = "dev"

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "kanbo",
	Short: "kanbo - a terminal client for Kanban boards",
	Long: `kanbo is a terminal client for a Kanban board REST API.

Run it without arguments to open the board UI, or use the subcommands
to script boards, columns and tasks.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupEnvironment,
	RunE: func(cmd *cobra.Command, args []string) error {
		startPath, _ := cmd.Flags().GetString("open")
		return launcher.Launch(cmd.Context(), launcher.Options{StartPath: startPath})
	},
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides "+config.EnvAPIURL+")")
	rootCmd.PersistentFlags().String("storage", "", "Storage backend: file, sqlite, redis or memory (overrides "+config.EnvStorage+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.Flags().String("open", "", "Route to open the UI at, e.g. /profile or /board/<id>")

	rootCmd.AddCommand(auth.Commands()...)
	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(setup.SetupCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
}

// setupEnvironment turns the persistent flags into environment overrides,
// so every config.Load sees them, then opens the log file.
func setupEnvironment(cmd *cobra.Command, args []string) error {
	overrides := map[string]string{
		"api-url":   config.EnvAPIURL,
		"storage":   config.EnvStorage,
		"log-level": config.EnvLogLevel,
	}
	for flag, env := range overrides {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(flag)
		if err := os.Setenv(env, value); err != nil {
			return fmt.Errorf("failed to apply --%s: %w", flag, err)
		}
	}

	level := config.DefaultLogLevel
	if cfg, err := config.Load(); err == nil {
		level = cfg.LogLevel
	}
	dataDir, err := config.DataDir()
	if err != nil {
		return fmt.Errorf("failed to locate data directory: %w", err)
	}
	closer, err := logging.Init(dataDir, level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer
	return nil
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}()
	return rootCmd.Execute()
}
