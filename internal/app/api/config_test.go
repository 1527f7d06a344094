package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "POSTGRES_DSN", "AUTO_MIGRATE", "SEED_DEMO_DATA", "REDIS_ADDR",
		"TAX_CACHE_TTL_SECONDS", "MAIL_GATEWAY_URL", "TEMPORAL_ADDRESS", "TEMPORAL_NAMESPACE", "TEMPORAL_DISABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.PostgresDSN)
	assert.Equal(t, 5*time.Minute, cfg.TaxCacheTTL)
	assert.Equal(t, client.DefaultHostPort, cfg.TemporalAddress)
	assert.Equal(t, client.DefaultNamespace, cfg.TemporalNamespace)
	assert.False(t, cfg.TemporalDisabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("TAX_CACHE_TTL_SECONDS", "30")
	t.Setenv("TEMPORAL_DISABLED", "yes")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.TaxCacheTTL)
	assert.True(t, cfg.TemporalDisabled)
	assert.True(t, cfg.SeedDemoData)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	t.Setenv("TAX_CACHE_TTL_SECONDS", "-1")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("TAX_CACHE_TTL_SECONDS", "")
	t.Setenv("PORT", "http")
	_, err = LoadConfig()
	require.Error(t, err)
}
