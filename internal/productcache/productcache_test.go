package productcache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastykitchen/admin-api/internal/models"
	"github.com/tastykitchen/admin-api/internal/productcache"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	cache := productcache.NewMemoryCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "p-1")
	assert.False(t, ok)

	cache.Set(ctx, models.Product{ID: "p-1", Name: "Pizza"})

	p, ok := cache.Get(ctx, "p-1")
	require.True(t, ok)
	assert.Equal(t, "Pizza", p.Name)
}

func TestMemoryCacheClear(t *testing.T) {
	cache := productcache.NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, models.Product{ID: "p-1", Name: "Pizza"})
	cache.Clear()

	_, ok := cache.Get(ctx, "p-1")
	assert.False(t, ok)
}
