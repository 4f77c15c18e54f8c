package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	FlagStorePostgres = "postgres"
	FlagStoreRedis    = "redis"
	FlagStoreMemory   = "memory"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	AppPort int

	FlagStore string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	TelegramBotToken string

	// SubmitDelay is the simulated network delay for request and report submission.
	SubmitDelay time.Duration
	// LookupDelay is the simulated delay of a plate lookup.
	LookupDelay time.Duration

	Timezone string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "securitybot"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))
	cfg.AppPort = cast.ToInt(getOrReturnDefault("APP_PORT", 8080))

	cfg.FlagStore = cast.ToString(getOrReturnDefault("FLAG_STORE", FlagStorePostgres))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "1234"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "securitybot"))

	cfg.RedisHost = cast.ToString(getOrReturnDefault("REDIS_HOST", "localhost"))
	cfg.RedisPort = cast.ToString(getOrReturnDefault("REDIS_PORT", "6379"))
	cfg.RedisPassword = cast.ToString(getOrReturnDefault("REDIS_PASSWORD", ""))
	cfg.RedisDB = cast.ToInt(getOrReturnDefault("REDIS_DB", 0))
	cfg.RedisPrefix = cast.ToString(getOrReturnDefault("REDIS_PREFIX", "securitybot:flags"))

	cfg.TelegramBotToken = cast.ToString(getOrReturnDefault("TG_BOT_TOKEN", ""))

	cfg.SubmitDelay = time.Duration(cast.ToInt64(getOrReturnDefault("SIMULATED_DELAY_MS", 2000))) * time.Millisecond
	cfg.LookupDelay = time.Duration(cast.ToInt64(getOrReturnDefault("LOOKUP_DELAY_MS", 1000))) * time.Millisecond

	cfg.Timezone = cast.ToString(getOrReturnDefault("TIMEZONE", "Local"))

	return cfg
}

// Location resolves Timezone, falling back to the process local zone.
func (c Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
