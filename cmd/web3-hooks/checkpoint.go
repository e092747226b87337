package main

import (
	"context"
	"fmt"

	"github.com/superfluid-finance/web3-hooks/internal/checkpoint"
	"github.com/superfluid-finance/web3-hooks/internal/config"
	filestorage "github.com/superfluid-finance/web3-hooks/internal/infra/storage/file"
	pebblestorage "github.com/superfluid-finance/web3-hooks/internal/infra/storage/pebble"
	postgresstorage "github.com/superfluid-finance/web3-hooks/internal/infra/storage/postgres"
	redisstorage "github.com/superfluid-finance/web3-hooks/internal/infra/storage/redis"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/logger"
)

// openCheckpointStorage opens the configured backend. The returned func
// releases it.
func openCheckpointStorage(ctx context.Context, cfg config.Config) (checkpoint.Storage, func(), error) {
	switch cfg.CheckpointBackend {
	case config.BackendRedis:
		c, err := redisstorage.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { closeLogged(ctx, "redis", c.Close) }, nil

	case config.BackendPostgres:
		s, err := postgresstorage.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.BackendPebble:
		s, err := pebblestorage.Open(cfg.CheckpointPebblePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { closeLogged(ctx, "pebble", s.Close) }, nil

	case config.BackendFile, "":
		s, err := filestorage.NewCheckpointStore(cfg.CheckpointDir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown checkpoint backend %q", cfg.CheckpointBackend)
	}
}

func closeLogged(ctx context.Context, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Warn(ctx, "close checkpoint storage", "backend", name, "error", err)
	}
}
