package cache

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/config"
)

// Cache is the simple get/set key-value store with TTL used for response
// caching. Implementations must treat a miss as (value="", ok=false, err=nil).
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Ping(ctx context.Context) error
}

type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

func NewRedisCache(cfg config.Redis) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisCache{
		client:     client,
		defaultTTL: time.Duration(cfg.TTLSeconds) * time.Second,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Disabled is the cache used when no Redis address is configured; gets
// always miss and sets are dropped.
type Disabled struct{}

func (Disabled) Get(ctx context.Context, key string) (string, bool, error) { return "", false, nil }

func (Disabled) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }

func (Disabled) Ping(ctx context.Context) error { return nil }
