package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type cachedValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "properties", CacheKey("properties"))
	assert.Equal(t, "properties:id:7", CacheKey("properties", "id", "7"))
}

func TestCacheSetGet(t *testing.T) {
	cache := NewCacheService(nil)
	ctx := context.Background()

	var out cachedValue
	assert.False(t, cache.Get(ctx, "missing", &out))

	cache.Set(ctx, "k", cachedValue{Name: "room", Count: 3}, time.Minute)
	assert.True(t, cache.Get(ctx, "k", &out))
	assert.Equal(t, cachedValue{Name: "room", Count: 3}, out)
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCacheService(nil)
	ctx := context.Background()

	cache.Set(ctx, "short", cachedValue{Name: "gone"}, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	var out cachedValue
	assert.False(t, cache.Get(ctx, "short", &out))
}

func TestCacheDelete(t *testing.T) {
	cache := NewCacheService(nil)
	ctx := context.Background()

	cache.Set(ctx, "k", cachedValue{Name: "x"}, time.Minute)
	cache.Delete(ctx, "k")

	var out cachedValue
	assert.False(t, cache.Get(ctx, "k", &out))
}

func TestCacheDeletePrefix(t *testing.T) {
	cache := NewCacheService(nil)
	ctx := context.Background()

	cache.Set(ctx, CacheKey("properties", "id", "1"), cachedValue{Name: "a"}, time.Minute)
	cache.Set(ctx, CacheKey("properties", "area", "Depok"), cachedValue{Name: "b"}, time.Minute)
	cache.Set(ctx, CacheKey("amenities"), cachedValue{Name: "c"}, time.Minute)

	cache.DeletePrefix(ctx, "properties")

	var out cachedValue
	assert.False(t, cache.Get(ctx, CacheKey("properties", "id", "1"), &out))
	assert.False(t, cache.Get(ctx, CacheKey("properties", "area", "Depok"), &out))
	assert.True(t, cache.Get(ctx, CacheKey("amenities"), &out))
}

func TestCacheClear(t *testing.T) {
	cache := NewCacheService(nil)
	ctx := context.Background()

	cache.Set(ctx, "a", cachedValue{}, time.Minute)
	cache.Set(ctx, "b", cachedValue{}, time.Minute)
	cache.Clear(ctx)

	var out cachedValue
	assert.False(t, cache.Get(ctx, "a", &out))
	assert.False(t, cache.Get(ctx, "b", &out))
}
