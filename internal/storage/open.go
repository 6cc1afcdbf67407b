package storage

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/fittrack/internal/config"
	"github.com/misterclayt0n/fittrack/internal/utils"
)

// Open builds the backend named by the store configuration.
func Open(ctx context.Context, cfg config.StoreConfig) (Backend, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		dir, err := utils.ExpandHome(cfg.Path)
		if err != nil {
			return nil, err
		}
		return NewFileBackend(dir)
	case config.BackendSQL:
		return NewSQLBackend(cfg.ConnectionString)
	case config.BackendRedis:
		return NewRedisBackend(ctx, cfg.RedisURL)
	case config.BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
