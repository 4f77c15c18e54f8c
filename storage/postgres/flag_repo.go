package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"securitybot/pkg/logger"
)

func (s *Store) Get(ctx context.Context, deviceID int64, key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM app_flags WHERE device_id = $1 AND key = $2`
	err := s.pool.QueryRow(ctx, query, deviceID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		s.log.Error("failed to get flag", logger.Error(err), logger.Int64("device_id", deviceID), logger.String("key", key))
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, deviceID int64, key, value string) error {
	query := `
		INSERT INTO app_flags (device_id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (device_id, key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := s.pool.Exec(ctx, query, deviceID, key, value)
	if err != nil {
		s.log.Error("failed to set flag", logger.Error(err), logger.Int64("device_id", deviceID), logger.String("key", key))
		return err
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, deviceID int64, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM app_flags WHERE device_id = $1 AND key = $2`, deviceID, key)
	if err != nil {
		s.log.Error("failed to delete flag", logger.Error(err), logger.Int64("device_id", deviceID), logger.String("key", key))
	}
	return err
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "TRUNCATE TABLE app_flags")
	return err
}
