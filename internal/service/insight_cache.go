package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// InsightCache guarda respuestas del LLM para payloads identicos.
type InsightCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// InsightCacheKey deriva una clave estable del payload.
func InsightCacheKey(req AIInsightRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("insight cache key: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// DefaultMemoryCacheEntries acota el cache en memoria cuando no hay redis.
const DefaultMemoryCacheEntries = 1024

type memoryInsightCache struct {
	mu         sync.Mutex
	items      map[string]memoryCacheItem
	maxEntries int
	now        func() time.Time
}

type memoryCacheItem struct {
	value     string
	expiresAt time.Time
}

// NewMemoryInsightCache crea un cache en memoria con a lo sumo maxEntries claves.
// Con maxEntries <= 0 usa DefaultMemoryCacheEntries.
func NewMemoryInsightCache(maxEntries int) InsightCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryCacheEntries
	}
	return &memoryInsightCache{
		items:      make(map[string]memoryCacheItem),
		maxEntries: maxEntries,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (c *memoryInsightCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[key]
	if !ok {
		return "", false, nil
	}
	if !c.now().Before(item.expiresAt) {
		delete(c.items, key)
		return "", false, nil
	}
	return item.value, true, nil
}

func (c *memoryInsightCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxEntries {
		c.evictLocked(now)
	}
	c.items[key] = memoryCacheItem{value: value, expiresAt: now.Add(ttl)}
	return nil
}

// evictLocked borra las entradas vencidas y, si sigue lleno, la que vence antes.
func (c *memoryInsightCache) evictLocked(now time.Time) {
	var (
		oldestKey string
		oldestAt  time.Time
	)
	for k, item := range c.items {
		if !now.Before(item.expiresAt) {
			delete(c.items, k)
			continue
		}
		if oldestKey == "" || item.expiresAt.Before(oldestAt) {
			oldestKey, oldestAt = k, item.expiresAt
		}
	}
	if len(c.items) >= c.maxEntries && oldestKey != "" {
		delete(c.items, oldestKey)
	}
}

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisInsightCache struct {
	client redisKV
	prefix string
}

func NewRedisInsightCache(client *redis.Client) InsightCache {
	if client == nil {
		return nil
	}
	return &redisInsightCache{
		client: client,
		prefix: "insight:ai:",
	}
}

func (c *redisInsightCache) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *redisInsightCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}
