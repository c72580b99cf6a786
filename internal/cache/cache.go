// Package cache keeps read-mostly lookups in Redis. A nil or disabled cache always misses.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/YusovID/skillswap/internal/config"
	"github.com/redis/go-redis/v9"
)

const categoriesKey = "skillswap:categories"

// CategoryCache stores the distinct skill category list.
type CategoryCache interface {
	// Get reports found=false on a miss.
	Get(ctx context.Context) (categories []string, found bool, err error)
	Set(ctx context.Context, categories []string) error
	Invalidate(ctx context.Context) error
}

// NewRedisClient connects to Redis and verifies the connection. It returns nil, nil
// when cfg.Addr is empty.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

type RedisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCategoryCache(client *redis.Client, ttl time.Duration) *RedisCategoryCache {
	return &RedisCategoryCache{client: client, ttl: ttl}
}

func (c *RedisCategoryCache) Get(ctx context.Context) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, categoriesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read categories from cache: %w", err)
	}

	var categories []string
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached categories: %w", err)
	}

	return categories, true, nil
}

func (c *RedisCategoryCache) Set(ctx context.Context, categories []string) error {
	b, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}

	if err := c.client.Set(ctx, categoriesKey, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write categories to cache: %w", err)
	}

	return nil
}

func (c *RedisCategoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, categoriesKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate categories: %w", err)
	}

	return nil
}

// Noop is used when Redis is not configured.
type Noop struct{}

func (Noop) Get(context.Context) ([]string, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, []string) error         { return nil }
func (Noop) Invalidate(context.Context) error            { return nil }
