package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"kanban-board-api/internal/config"
)

// NewRedis connects the board-document cache. The client is returned to
// the caller for injection; a nil client disables caching.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	var client *redis.Client

	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	logger.Info("Redis connection established",
		zap.String("addr", client.Options().Addr),
		zap.Int("db", client.Options().DB),
	)
	return client, nil
}

// NewOptionalRedis returns nil when the cache is disabled or unreachable.
// The repository treats a nil client as cache-off, so a Redis outage at
// startup degrades to uncached reads instead of failing the process.
func NewOptionalRedis(cfg config.RedisConfig, logger *zap.Logger) *redis.Client {
	if !cfg.Enabled {
		return nil
	}
	client, err := NewRedis(cfg, logger)
	if err != nil {
		logger.Warn("Redis unavailable, board cache disabled", zap.Error(err))
		return nil
	}
	return client
}
