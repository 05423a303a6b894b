// Package storage persists small client-side values (auth token, cached user data)
// across runs, the way a browser keeps them in local storage.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Keys used by the services
const (
	KeyToken    = "token"
	KeyUserData = "userData"
)

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown storage backend")

// Storage is a string key/value store.
// Get reports found=false for a missing key; Remove of a missing key is not an error.
type Storage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Options selects and configures a backend
type Options struct {
	Backend   string
	Path      string // file and sqlite backends
	RedisAddr string
	RedisDB   int
	Namespace string // redis key prefix, defaults to "default"
}

// Open creates the backend named in opts
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile, "":
		return NewFile(opts.Path)
	case BackendSQLite:
		return OpenSQLite(ctx, opts.Path)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisDB, opts.Namespace)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
