package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"portfolio-api/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	keyCategories = "blog:categories"
	keyTags       = "blog:tags"

	DefaultTTL = time.Minute
)

var aggregateKeys = []string{keyCategories, keyTags}

// PostCache caches the public category and tag lists. Posts themselves are
// always read from the store. A nil client turns every call into a miss or
// a no-op.
//
// Writers bump the generation and delete the keys under mu, so a reader that
// loaded the store before a write can never store its result afterwards.
// When a delete fails the cache stays dirty: reads miss and retry the delete
// until it succeeds.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger

	mu         sync.RWMutex
	generation uint64
	dirty      bool
}

func NewPostCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *PostCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PostCache{client: client, ttl: ttl, logger: log}
}

func (c *PostCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Generation must be read before loading the store; pass it to the setter.
func (c *PostCache) Generation() uint64 {
	if !c.Enabled() {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

func (c *PostCache) GetCategories(ctx context.Context) ([]string, bool) {
	var out []string
	ok := c.get(ctx, keyCategories, &out)
	return out, ok
}

func (c *PostCache) SetCategories(ctx context.Context, generation uint64, categories []string) {
	c.set(ctx, generation, keyCategories, categories)
}

func (c *PostCache) GetTags(ctx context.Context) ([]string, bool) {
	var out []string
	ok := c.get(ctx, keyTags, &out)
	return out, ok
}

func (c *PostCache) SetTags(ctx context.Context, generation uint64, tags []string) {
	c.set(ctx, generation, keyTags, tags)
}

// Invalidate drops both aggregate lists after a blog write.
func (c *PostCache) Invalidate(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	return c.deleteLocked(ctx)
}

func (c *PostCache) deleteLocked(ctx context.Context) error {
	if err := c.client.Del(ctx, aggregateKeys...).Err(); err != nil {
		c.dirty = true
		c.logger.Warn("[CACHE] Failed to invalidate %v, bypassing cache until it succeeds: %v", aggregateKeys, err)
		return err
	}
	c.dirty = false
	return nil
}

// usable retries a failed invalidation and reports whether the cache may be read.
func (c *PostCache) usable(ctx context.Context) bool {
	c.mu.RLock()
	dirty := c.dirty
	c.mu.RUnlock()
	if !dirty {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return true
	}
	return c.deleteLocked(ctx) == nil
}

func (c *PostCache) get(ctx context.Context, key string, dst interface{}) bool {
	if !c.Enabled() || !c.usable(ctx) {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("[CACHE] Failed to read %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("[CACHE] Dropping undecodable entry %s: %v", key, err)
		c.client.Del(ctx, key)
		return false
	}
	return true
}

func (c *PostCache) set(ctx context.Context, generation uint64, key string, value interface{}) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("[CACHE] Failed to encode %s: %v", key, err)
		return
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.dirty || generation != c.generation {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("[CACHE] Failed to write %s: %v", key, err)
	}
}
