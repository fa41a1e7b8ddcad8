package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("AUTHFLOW_STORAGE_BACKEND", "redis")
	t.Setenv("AUTHFLOW_REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("AUTHFLOW_SEED_DEMO_USERS", "false")
	t.Setenv("AUTHFLOW_NETWORK_DELAY", "250ms")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "redis", c.StorageBackend)
	assert.Equal(t, "redis://localhost:6379/1", c.RedisURL)
	assert.False(t, c.SeedDemoUsers)
	assert.Equal(t, 250*time.Millisecond, c.NetworkDelay)
	assert.Equal(t, "authflow.db", c.StoragePath, "unset variables keep defaults")
}

func TestParseEnv_Malformed(t *testing.T) {
	t.Setenv("AUTHFLOW_LOGOUT_DELAY", "soon")

	var c Config
	require.Panics(t, func() { parseEnv(&c) })
}
