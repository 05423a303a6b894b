package app

import (
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/kanbo/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	storage    storage.Storage
	httpClient *http.Client
	logger     *slog.Logger
}

// WithStorage replaces the configured storage backend
func WithStorage(s storage.Storage) Option {
	return func(cfg *appConfig) {
		cfg.storage = s
	}
}

// WithHTTPClient sets the HTTP client used for API requests
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = c
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
