package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"perfume-shop/models"
)

const (
	fragranceCacheKey      = "fragrances:all"
	defaultCatalogCacheTTL = 5 * time.Minute
)

type RedisFragranceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFragranceCache(client *redis.Client, ttl time.Duration) *RedisFragranceCache {
	if ttl <= 0 {
		ttl = defaultCatalogCacheTTL
	}
	return &RedisFragranceCache{client: client, ttl: ttl}
}

func (c *RedisFragranceCache) Get(ctx context.Context) ([]models.Fragrance, bool, error) {
	cached, err := c.client.Get(ctx, fragranceCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var list []models.Fragrance
	if err := json.Unmarshal(cached, &list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

func (c *RedisFragranceCache) Set(ctx context.Context, list []models.Fragrance) error {
	jsonData, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fragranceCacheKey, jsonData, c.ttl).Err()
}

func (c *RedisFragranceCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, fragranceCacheKey).Err()
}
