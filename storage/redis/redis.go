package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"securitybot/config"
	"securitybot/pkg/logger"
	"securitybot/storage"
)

// Store keeps every device's flags in one hash at "<prefix>:<device>".
type Store struct {
	client *goredis.Client
	prefix string
	log    logger.ILogger
}

func New(ctx context.Context, cfg config.Config, log logger.ILogger) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Error("failed to connect Redis", logger.Error(err))
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("Redis connected")
	return NewWithClient(rdb, cfg.RedisPrefix, log), nil
}

func NewWithClient(client *goredis.Client, prefix string, log logger.ILogger) *Store {
	return &Store{client: client, prefix: prefix, log: log}
}

var _ storage.IKeyValueStorage = (*Store)(nil)

func (s *Store) deviceKey(deviceID int64) string {
	return s.prefix + ":" + strconv.FormatInt(deviceID, 10)
}

func (s *Store) Get(ctx context.Context, deviceID int64, key string) (string, bool, error) {
	v, err := s.client.HGet(ctx, s.deviceKey(deviceID), key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		s.log.Error("failed to get flag", logger.Error(err), logger.Int64("device_id", deviceID), logger.String("key", key))
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) Set(ctx context.Context, deviceID int64, key, value string) error {
	if err := s.client.HSet(ctx, s.deviceKey(deviceID), key, value).Err(); err != nil {
		s.log.Error("failed to set flag", logger.Error(err), logger.Int64("device_id", deviceID), logger.String("key", key))
		return err
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, deviceID int64, key string) error {
	if err := s.client.HDel(ctx, s.deviceKey(deviceID), key).Err(); err != nil {
		s.log.Error("failed to delete flag", logger.Error(err), logger.Int64("device_id", deviceID), logger.String("key", key))
		return err
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *Store) Close() {
	if err := s.client.Close(); err != nil {
		s.log.Warning("failed to close Redis client", logger.Error(err))
	}
}
