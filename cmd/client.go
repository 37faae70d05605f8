package main

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"

	"github.com/sells-group/census-geocode/pkg/cache"
	"github.com/sells-group/census-geocode/pkg/geocode"
)

// newGeocoder builds a geocode client from the loaded configuration. The
// returned cleanup releases the cache backend.
func newGeocoder() (*geocode.Client, func(), error) {
	store, cleanup, err := newCacheStore()
	if err != nil {
		return nil, nil, err
	}

	opts := []geocode.Option{
		geocode.WithCache(store),
		geocode.WithCacheTTL(time.Duration(cfg.Cache.TTLHours) * time.Hour),
	}
	if cfg.Geocoder.Host != "" {
		opts = append(opts, geocode.WithHost(cfg.Geocoder.Host))
	}
	if cfg.Geocoder.UserAgent != "" {
		opts = append(opts, geocode.WithUserAgent(cfg.Geocoder.UserAgent))
	}
	if cfg.Geocoder.MinIntervalMS > 0 {
		opts = append(opts, geocode.WithMinInterval(time.Duration(cfg.Geocoder.MinIntervalMS)*time.Millisecond))
	}

	return geocode.New(opts...), cleanup, nil
}

// newCacheStore constructs the configured cache backend.
func newCacheStore() (cache.Cache, func(), error) {
	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour

	switch cfg.Cache.Backend {
	case "", "memory":
		return cache.NewMemory(ttl), func() {}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})
		return cache.NewRedis(client, ttl), func() { _ = client.Close() }, nil

	case "sqlite":
		store, err := cache.NewSQLite(cfg.Cache.SQLitePath, ttl)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	default:
		return nil, nil, eris.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
