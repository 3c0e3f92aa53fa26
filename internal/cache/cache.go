package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blues/adagency/internal/config"
	"github.com/go-redis/redis/v8"
)

// Cache stores JSON-encoded public feeds.
type Cache interface {
	// Get decodes the value into dest. found is false when the key is missing.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

type redisCache struct {
	*redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis returns a cache backed by the given client.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) Cache {
	return &redisCache{
		Client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// New builds the cache from config; a disabled redis section yields a no-op cache.
func New(ctx context.Context, cfg config.RedisConfig) (Cache, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewRedis(client, cfg.Prefix, time.Duration(cfg.TTL)*time.Second), nil
}

func (c *redisCache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	str, err := c.Client.Get(ctx, c.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(str), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.key(key), b, c.ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, c.key(k))
	}
	return c.Client.Del(ctx, full...).Err()
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, interface{}) error { return nil }
func (Nop) Delete(context.Context, ...string) error { return nil }
