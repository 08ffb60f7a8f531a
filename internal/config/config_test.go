package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8800, cfg.Port)
	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PINDROP_PORT", "9000")
	t.Setenv("PINDROP_STORAGE", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379")
	t.Setenv("PINDROP_BCRYPT_COST", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "redis", cfg.StorageType)
	assert.Equal(t, "redis://cache:6379", cfg.RedisURL)
	assert.Equal(t, 12, cfg.BcryptCost)
}
