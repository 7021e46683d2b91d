package cache

import (
	"context"
	"fmt"
	"time"

	"spotline/config"

	"github.com/redis/go-redis/v9"
)

// Cache is a short-TTL Redis cache for hot read paths, currently the
// per-location safety stats payload. A nil *Cache is valid and disables
// caching, so callers do not branch on whether Redis is configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis. Returns (nil, nil) when no address is configured.
func New(ctx context.Context, cfg config.RedisConfig) (*Cache, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Cache{client: client, ttl: cfg.SafetyStatsTTL}, nil
}

func safetyStatsKey(locationID uint) string {
	return fmt.Sprintf("safety_stats:%d", locationID)
}

// GetSafetyStats returns the cached stats payload for a location, if any.
func (c *Cache) GetSafetyStats(ctx context.Context, locationID uint) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, safetyStatsKey(locationID)).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

// SetSafetyStats stores the stats payload with the configured TTL. Failures
// are ignored; the cache is best effort.
func (c *Cache) SetSafetyStats(ctx context.Context, locationID uint, payload []byte) {
	if c == nil {
		return
	}
	_ = c.client.Set(ctx, safetyStatsKey(locationID), payload, c.ttl).Err()
}

// InvalidateSafetyStats drops the cached payload after a new alert or
// dismissal so readers do not wait out the TTL.
func (c *Cache) InvalidateSafetyStats(ctx context.Context, locationID uint) {
	if c == nil {
		return
	}
	_ = c.client.Del(ctx, safetyStatsKey(locationID)).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
