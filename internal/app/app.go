package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/kanbo/internal/api"
	"github.com/thenoetrevino/kanbo/internal/config"
	authservice "github.com/thenoetrevino/kanbo/internal/services/auth"
	boardservice "github.com/thenoetrevino/kanbo/internal/services/board"
	columnservice "github.com/thenoetrevino/kanbo/internal/services/column"
	taskservice "github.com/thenoetrevino/kanbo/internal/services/task"
	tokenservice "github.com/thenoetrevino/kanbo/internal/services/token"
	userservice "github.com/thenoetrevino/kanbo/internal/services/user"
	"github.com/thenoetrevino/kanbo/internal/storage"
	"github.com/thenoetrevino/kanbo/internal/store"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	storage storage.Storage
	client  *api.Client

	AuthService   authservice.Service
	TokenService  tokenservice.Service
	UserService   userservice.Service
	BoardService  boardservice.Service
	ColumnService columnservice.Service
	TaskService   taskservice.Service

	Store *store.Store
}

// New creates a new App with all services initialized and the persisted
// session restored. This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}

	kv := ac.storage
	if kv == nil {
		var err error
		kv, err = storage.Open(ctx, storage.Options{
			Backend:   cfg.Storage.Backend,
			Path:      cfg.Storage.Path,
			RedisAddr: cfg.Storage.RedisAddr,
			RedisDB:   cfg.Storage.RedisDB,
			Namespace: cfg.Storage.Namespace,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
		}
	}

	httpClient := ac.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	tokens := tokenservice.NewService(kv)
	client, err := api.New(cfg.APIURL,
		api.WithHTTPClient(httpClient),
		api.WithTokenSource(tokens),
		api.WithLogger(ac.logger),
	)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	a := &App{
		Config:        cfg,
		Logger:        ac.logger,
		storage:       kv,
		client:        client,
		AuthService:   authservice.NewService(client),
		TokenService:  tokens,
		UserService:   userservice.NewService(client, kv),
		BoardService:  boardservice.NewService(client),
		ColumnService: columnservice.NewService(client),
		TaskService:   taskservice.NewService(client),
	}
	a.Store = store.New(store.Services{
		Auth:    a.AuthService,
		Users:   a.UserService,
		Tokens:  a.TokenService,
		Boards:  a.BoardService,
		Columns: a.ColumnService,
		Tasks:   a.TaskService,
	}, store.WithLogger(ac.logger))

	if err := a.Store.Hydrate(ctx); err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	return a, nil
}

// Storage returns the persistent key/value storage
func (a *App) Storage() storage.Storage {
	return a.storage
}

// Client returns the shared API client
func (a *App) Client() *api.Client {
	return a.client
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.storage.Close()
}
