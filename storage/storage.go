package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"stardefender/config"
	"stardefender/game"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name
var ErrUnknownBackend = errors.New("storage: unknown backend")

// Store is a high score store that holds a connection or file handle
type Store interface {
	game.HighScoreStore
	Close() error
}

// Open builds the configured backend, wrapped in a write-behind queue when enabled
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "storage")

	var (
		store Store
		err   error
	)
	switch strings.ToLower(cfg.Backend) {
	case "", "memory":
		store = memoryStore{game.NewMemoryStore(0)}
	case "file":
		store = NewFileStore(cfg.File.Path)
	case "redis":
		store, err = NewRedisStore(ctx, cfg.Redis)
	case "postgres":
		store, err = NewPostgresStore(ctx, cfg.Database)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("high score store ready", "backend", cfg.Backend, "write_behind", cfg.WriteBehind)
	if cfg.WriteBehind {
		return NewWriteBehind(store, logger), nil
	}
	return store, nil
}

type memoryStore struct {
	*game.MemoryStore
}

func (memoryStore) Close() error { return nil }
