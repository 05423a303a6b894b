// Package launcher starts the terminal UI
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/kanbo/internal/app"
	"github.com/thenoetrevino/kanbo/internal/config"
	"github.com/thenoetrevino/kanbo/internal/tui/core"
)

// Options tune a launch
type Options struct {
	// StartPath is the route opened first, "/" when empty
	StartPath string
	// ProgramOptions are passed to tea.NewProgram after the defaults
	ProgramOptions []tea.ProgramOption
}

// Launch loads the configuration, builds the application and runs the
// TUI until the user quits or the process is interrupted.
func Launch(ctx context.Context, opts Options) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.New(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing storage", "error", err)
		}
	}()

	return Run(ctx, application, opts)
}

// Run runs the TUI on an already built application
func Run(ctx context.Context, application *app.App, opts Options) error {
	tuiApp := core.New(ctx, application, opts.StartPath)
	defer tuiApp.Close()

	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts.ProgramOptions...)
	p := tea.NewProgram(tuiApp, programOpts...)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, exiting")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
