package storage

import (
	"errors"

	"golang.org/x/net/context"
)

// ErrNotFound is returned when a key has no value in the adapter.
var ErrNotFound = errors.New("storage: key not found")

// Adapter is the narrow key-value surface the session store persists
// through. The browser's localStorage role from the original product is
// played by whichever backend is configured (memory, redis, postgres).
type Adapter interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// FromEnv picks an adapter from CONSOLE_STORAGE: "redis", "postgres" or
// "memory" (default).
func FromEnv(kind string) (Adapter, error) {
	switch kind {
	case "redis":
		return NewRedis()
	case "postgres":
		return NewPostgres()
	case "", "memory":
		return NewMemory(), nil
	default:
		return nil, errors.New("storage: unknown adapter " + kind)
	}
}
