package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/config"
	"github.com/cory-johannsen/colony/internal/storage"
	"github.com/cory-johannsen/colony/internal/storage/file"
	"github.com/cory-johannsen/colony/internal/storage/postgres"
	redisstore "github.com/cory-johannsen/colony/internal/storage/redis"
)

// openStore connects the configured persistence backend. The returned func
// releases its connections.
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.SaveStore, func(), error) {
	switch cfg.Persistence.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		logger.Info("save backend ready", zap.String("backend", config.BackendPostgres))
		return postgres.NewSaveRepository(pool.DB(), logger), pool.Close, nil

	case config.BackendRedis:
		store, err := redisstore.NewStore(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("save backend ready", zap.String("backend", config.BackendRedis), zap.String("addr", cfg.Redis.Addr))
		return store, func() { _ = store.Close() }, nil

	default:
		store, err := file.NewStore(cfg.Persistence.Dir, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("save backend ready", zap.String("backend", config.BackendFile), zap.String("dir", cfg.Persistence.Dir))
		return store, func() {}, nil
	}
}
