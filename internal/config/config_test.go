package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PUBSUB_BACKEND", "PUBLISH_INTERVAL",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, 100*time.Millisecond, cfg.PublishInterval)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestRedisBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("PUBSUB_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("REDIS_DB", "2")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("PUBSUB_BACKEND", "kafka")

	_, err := New()
	assert.Error(t, err)
}

func TestPublishInterval(t *testing.T) {
	clearEnv(t)
	t.Setenv("PUBLISH_INTERVAL", "250ms")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.PublishInterval)
}

func TestInvalidPublishInterval(t *testing.T) {
	clearEnv(t)

	for _, interval := range []string{"fast", "-1s", "0"} {
		t.Setenv("PUBLISH_INTERVAL", interval)
		_, err := New()
		assert.Error(t, err, "interval %q", interval)
	}
}

func TestInvalidRedisDB(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "two")

	_, err := New()
	assert.Error(t, err)
}
