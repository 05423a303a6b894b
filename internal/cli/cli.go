package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanbo/internal/app"
	"github.com/thenoetrevino/kanbo/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services and the store
	ctx context.Context

	// borrowed apps belong to the caller and are not closed with the CLI
	borrowed bool
}

// NewCLI loads the configuration and builds the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{
		App: application,
		ctx: ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}
