// Package backend opens the storage.KV implementation selected by configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/topten/internal/config"
	"github.com/mmynk/topten/internal/storage"
	"github.com/mmynk/topten/internal/storage/dynamo"
	"github.com/mmynk/topten/internal/storage/memory"
	"github.com/mmynk/topten/internal/storage/redis"
	"github.com/mmynk/topten/internal/storage/sqlite"
)

// Open connects to the configured backend. The caller owns the returned KV
// and must Close it on shutdown.
func Open(ctx context.Context, cfg config.StorageConfig) (storage.KV, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		slog.Warn("Using in-memory storage; data will not survive a restart")
		return memory.New(), nil

	case config.BackendSQLite:
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		slog.Info("SQLite storage ready", "path", cfg.SQLitePath)
		return store, nil

	case config.BackendRedis:
		store, err := redis.New(ctx, cfg.RedisURL, redis.WithKeyPrefix(cfg.RedisKeyPrefix))
		if err != nil {
			return nil, fmt.Errorf("failed to open redis: %w", err)
		}
		slog.Info("Redis storage ready", "key_prefix", cfg.RedisKeyPrefix)
		return store, nil

	case config.BackendDynamoDB:
		store, err := dynamo.New(ctx, dynamo.Options{
			TableName: cfg.DynamoTable,
			Region:    cfg.DynamoRegion,
			Endpoint:  cfg.DynamoEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open dynamodb: %w", err)
		}
		slog.Info("DynamoDB storage ready", "table", cfg.DynamoTable)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
