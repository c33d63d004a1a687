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

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://tastykitchen-backend.vercel.app", cfg.BackendURL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.ProductCacheTTL)
	assert.Equal(t, 3*time.Second, cfg.ProductFetchTimeout)
	assert.Equal(t, 8, cfg.EnrichConcurrency)
	assert.Equal(t, 10, cfg.RecentOrders)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ADMIN_ADDR", ":9090")
	t.Setenv("ADMIN_BACKEND_URL", "http://localhost:3000")
	t.Setenv("ADMIN_ENRICH_CONCURRENCY", "4")
	t.Setenv("ADMIN_PRODUCT_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "http://localhost:3000", cfg.BackendURL)
	assert.Equal(t, 4, cfg.EnrichConcurrency)
	assert.Equal(t, 30*time.Second, cfg.ProductCacheTTL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero concurrency", "ADMIN_ENRICH_CONCURRENCY", "0"},
		{"negative recent orders", "ADMIN_RECENT_ORDERS", "-1"},
		{"zero rate limit", "ADMIN_RATE_LIMIT_RPS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
