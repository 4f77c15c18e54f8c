package flagstore

import (
	"context"
	"fmt"

	"securitybot/config"
	"securitybot/pkg/logger"
	"securitybot/storage"
	"securitybot/storage/mock"
	"securitybot/storage/postgres"
	"securitybot/storage/redis"
)

// Open connects the key/value backend selected by cfg.FlagStore.
func Open(ctx context.Context, cfg config.Config, log logger.ILogger) (storage.IKeyValueStorage, error) {
	switch cfg.FlagStore {
	case config.FlagStorePostgres:
		pg, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case config.FlagStoreRedis:
		rd, err := redis.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return rd, nil
	case config.FlagStoreMemory:
		log.Warning("flags are kept in memory and lost on restart")
		return mock.NewKV(), nil
	default:
		return nil, fmt.Errorf("unknown flag store %q", cfg.FlagStore)
	}
}
