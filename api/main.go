package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	_ "github.com/tastykitchen/admin-api/docs"
	"github.com/tastykitchen/admin-api/internal/client"
	"github.com/tastykitchen/admin-api/internal/config"
	"github.com/tastykitchen/admin-api/internal/enrich"
	adminhttp "github.com/tastykitchen/admin-api/internal/http"
	"github.com/tastykitchen/admin-api/internal/http/handlers"
	rl "github.com/tastykitchen/admin-api/internal/http/rate_limiter"
	"github.com/tastykitchen/admin-api/internal/productcache"
)

// @title TastyKitchen Admin API
// @version 1.0
// @description Admin console backend for the TastyKitchen food ordering service.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var cache productcache.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		cache = productcache.NewRedisCache(rdb, cfg.ProductCacheTTL)
	}

	backend := client.New(cfg.BackendURL, cfg.FetchTimeout, cache)

	handlers.SetBackend(backend)
	handlers.SetEnricher(enrich.New(backend, cfg.EnrichConcurrency, cfg.ProductFetchTimeout))
	handlers.SetRecentOrdersCount(cfg.RecentOrders)

	rl.SetLimits(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	r := adminhttp.NewRouter()
	log.Printf("server running on %s (backend %s)", cfg.Addr, cfg.BackendURL)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
