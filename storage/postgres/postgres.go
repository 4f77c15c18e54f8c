package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"securitybot/config"
	"securitybot/pkg/logger"
	"securitybot/storage"
)

type Store struct {
	pool *pgxpool.Pool
	log  logger.ILogger
}

// New connects to Postgres, applies migrations and returns the flag store.
func New(ctx context.Context, cfg config.Config, log logger.ILogger) (*Store, error) {
	url := ConnString(cfg)

	// 🔹 Connection pool
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Error("error while parsing Postgres config", logger.Error(err))
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("failed to connect Postgres", logger.Error(err))
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error("failed to ping Postgres", logger.Error(err))
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := runMigrations(url, log); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("Postgres connected")

	return &Store{
		pool: pool,
		log:  log,
	}, nil
}

func ConnString(cfg config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresDB,
	)
}

func migrationsPath() string {
	cwd, _ := os.Getwd()
	if _, err := os.Stat(filepath.Join(cwd, "migrations", "postgres")); err == nil {
		return filepath.Join(cwd, "migrations", "postgres")
	}
	return filepath.Join(cwd, "migrations")
}

func runMigrations(url string, log logger.ILogger) error {
	m, err := migrate.New("file://"+migrationsPath(), url)
	if err != nil {
		log.Error("migration init error or no migrations found", logger.Error(err))
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return nil
		}
		log.Error("migration up error", logger.Error(err))
		return err
	}
	return nil
}

func (s *Store) Close() {
	s.pool.Close()
}

var _ storage.IKeyValueStorage = (*Store)(nil)
