package cli

import (
	"context"

	"github.com/thenoetrevino/kanbo/internal/app"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying a prebuilt app. Commands run with it
// use that app instead of building one from config.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI for the command, reusing an app placed
// in ctx by WithApp or building a new one from config.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, ctx: ctx, borrowed: true}, nil
	}
	return NewCLI(ctx)
}
