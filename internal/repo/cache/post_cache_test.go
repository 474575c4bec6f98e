package cache

import (
	"context"
	"testing"
	"time"

	"portfolio-api/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostCache(t *testing.T) (*PostCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	return NewPostCache(client, time.Minute, logger.New()), mr
}

func TestPostCache_DisabledIsNoop(t *testing.T) {
	ctx := context.Background()
	c := NewPostCache(nil, 0, logger.New())
	assert.False(t, c.Enabled())
	assert.Equal(t, DefaultTTL, c.ttl)

	c.SetTags(ctx, c.Generation(), []string{"law"})
	_, ok := c.GetTags(ctx)
	assert.False(t, ok)

	assert.NoError(t, c.Invalidate(ctx))

	var nilCache *PostCache
	assert.False(t, nilCache.Enabled())
	assert.Equal(t, uint64(0), nilCache.Generation())
}

func TestPostCache_UnreachableServerIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	ctx := context.Background()
	c := NewPostCache(client, time.Minute, logger.New())
	assert.True(t, c.Enabled())

	c.SetCategories(ctx, c.Generation(), []string{"general"})
	_, ok := c.GetCategories(ctx)
	assert.False(t, ok)
	assert.Error(t, c.Invalidate(ctx))
}

func TestPostCache_RoundTripAndInvalidate(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestPostCache(t)

	c.SetCategories(ctx, c.Generation(), []string{"Law & Policy"})
	c.SetTags(ctx, c.Generation(), []string{"law", "youth"})

	categories, ok := c.GetCategories(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"Law & Policy"}, categories)
	tags, ok := c.GetTags(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"law", "youth"}, tags)
	assert.Equal(t, time.Minute, mr.TTL(keyTags))

	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists(keyCategories))
	assert.False(t, mr.Exists(keyTags))
}

func TestPostCache_SetFromBeforeInvalidateIsDropped(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestPostCache(t)

	before := c.Generation()
	require.NoError(t, c.Invalidate(ctx))
	c.SetCategories(ctx, before, []string{"stale"})

	assert.False(t, mr.Exists(keyCategories))
	_, ok := c.GetCategories(ctx)
	assert.False(t, ok)
}

func TestPostCache_FailedInvalidateBypassesUntilRetried(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestPostCache(t)

	c.SetCategories(ctx, c.Generation(), []string{"Secret"})

	mr.SetError("ERR connection lost")
	assert.Error(t, c.Invalidate(ctx))
	mr.SetError("")

	// The stale entry is still in redis, but the cache must not serve it.
	require.True(t, mr.Exists(keyCategories))
	_, ok := c.GetCategories(ctx)
	assert.False(t, ok)
	assert.False(t, mr.Exists(keyCategories))

	c.SetCategories(ctx, c.Generation(), []string{"fresh"})
	categories, ok := c.GetCategories(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"fresh"}, categories)
}

func TestPostCache_DirtyCacheSkipsWrites(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestPostCache(t)

	mr.SetError("ERR connection lost")
	assert.Error(t, c.Invalidate(ctx))
	generation := c.Generation()
	mr.SetError("")

	c.SetTags(ctx, generation, []string{"law"})
	assert.False(t, mr.Exists(keyTags))
}
