package productcache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tastykitchen/admin-api/internal/models"
)

// Cache caches product records looked up during order enrichment. A miss is
// never an error; the caller falls back to the backend.
type Cache interface {
	Get(ctx context.Context, id string) (models.Product, bool)
	Set(ctx context.Context, p models.Product)
}

func key(id string) string {
	return "product:" + id
}

// RedisCache is a Redis-backed implementation of Cache.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, id string) (models.Product, bool) {
	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return models.Product{}, false
	}
	var p models.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.Product{}, false
	}
	return p, true
}

func (c *RedisCache) Set(ctx context.Context, p models.Product) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(p.ID), raw, c.ttl)
}

// MemoryCache is an in-memory implementation of Cache.
type MemoryCache struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{products: make(map[string]models.Product)}
}

func (c *MemoryCache) Get(ctx context.Context, id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[id]
	return p, ok
}

func (c *MemoryCache) Set(ctx context.Context, p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.ID] = p
}

func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = make(map[string]models.Product)
}
