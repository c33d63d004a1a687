package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the admin API settings. Values come from an optional
// admin-api.yaml in the working directory, overridden by ADMIN_* environment
// variables.
type Config struct {
	Addr                string
	BackendURL          string
	RedisAddr           string
	ProductCacheTTL     time.Duration
	FetchTimeout        time.Duration
	ProductFetchTimeout time.Duration
	EnrichConcurrency   int
	RecentOrders        int
	RateLimitRPS        float64
	RateLimitBurst      int
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("backend_url", "https://tastykitchen-backend.vercel.app")
	v.SetDefault("redis_addr", "")
	v.SetDefault("product_cache_ttl", "10m")
	v.SetDefault("fetch_timeout", "10s")
	v.SetDefault("product_fetch_timeout", "3s")
	v.SetDefault("enrich_concurrency", 8)
	v.SetDefault("recent_orders", 10)
	v.SetDefault("rate_limit_rps", 50)
	v.SetDefault("rate_limit_burst", 100)

	v.SetEnvPrefix("ADMIN")
	v.AutomaticEnv()

	v.SetConfigName("admin-api")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Addr:                v.GetString("addr"),
		BackendURL:          v.GetString("backend_url"),
		RedisAddr:           v.GetString("redis_addr"),
		ProductCacheTTL:     v.GetDuration("product_cache_ttl"),
		FetchTimeout:        v.GetDuration("fetch_timeout"),
		ProductFetchTimeout: v.GetDuration("product_fetch_timeout"),
		EnrichConcurrency:   v.GetInt("enrich_concurrency"),
		RecentOrders:        v.GetInt("recent_orders"),
		RateLimitRPS:        v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:      v.GetInt("rate_limit_burst"),
	}

	if cfg.BackendURL == "" {
		return Config{}, errors.New("backend_url must not be empty")
	}
	if cfg.EnrichConcurrency <= 0 {
		return Config{}, fmt.Errorf("enrich_concurrency must be positive, got %d", cfg.EnrichConcurrency)
	}
	if cfg.RecentOrders <= 0 {
		return Config{}, fmt.Errorf("recent_orders must be positive, got %d", cfg.RecentOrders)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, errors.New("rate limit settings must be positive")
	}
	return cfg, nil
}
