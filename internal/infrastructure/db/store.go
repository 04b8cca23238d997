// Package db opens the configured key-value backend.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spendy/ledger/internal/core/ports"
	"github.com/spendy/ledger/internal/infrastructure/config"
	"github.com/spendy/ledger/internal/infrastructure/db/mongo"
	"github.com/spendy/ledger/internal/infrastructure/db/redis"
	"github.com/spendy/ledger/internal/infrastructure/db/sqlite"
)

// Store is a key-value backend that can be health-checked and closed.
type Store interface {
	ports.KeyValueStore
	ports.Pinger
	Close() error
}

// Open connects to the backend named by cfg.Backend.
func Open(ctx context.Context, cfg config.StoreConfig, log zerolog.Logger) (Store, error) {
	var (
		store Store
		err   error
	)
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err = sqlite.Open(ctx, cfg.SQLitePath)
	case config.BackendRedis:
		store, err = redis.Open(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	case config.BackendMongo:
		store, err = mongo.Open(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}

	log.Info().Str("backend", cfg.Backend).Msg("key-value store ready")
	return store, nil
}
