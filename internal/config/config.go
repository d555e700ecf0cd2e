package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Backend selects the pub/sub transport implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
)

// Defaults reproduce the original demo: in-memory transport, ten
// iterations per second.
const (
	DefaultInterval = 100 * time.Millisecond
	DefaultRedisDB  = 0
)

// Config holds all configuration for the publisher and subscriber commands.
type Config struct {
	Backend         Backend
	PublishInterval time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
}

// New loads configuration from a .env file (if present) and the
// environment. Every value has a default, so an empty environment is valid.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Backend:         BackendMemory,
		PublishInterval: DefaultInterval,
		RedisAddr:       "localhost:6379",
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         DefaultRedisDB,
	}

	switch backend := os.Getenv("PUBSUB_BACKEND"); backend {
	case "", string(BackendMemory):
	case string(BackendRedis):
		cfg.Backend = BackendRedis
	default:
		return nil, fmt.Errorf("unknown PUBSUB_BACKEND %q (want memory or redis)", backend)
	}

	if interval := os.Getenv("PUBLISH_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid PUBLISH_INTERVAL %q: %w", interval, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("PUBLISH_INTERVAL must be positive, got %q", interval)
		}
		cfg.PublishInterval = d
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	return cfg, nil
}
