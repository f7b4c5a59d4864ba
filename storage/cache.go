package storage

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/karlseguin/ccache/v3"
	"github.com/rs/zerolog/log"
)

// DefaultCacheTTL is applied when callers pass a zero TTL.
const DefaultCacheTTL = 5 * time.Minute

// CacheService is a best-effort read cache: Redis when available, an
// in-process TTL cache otherwise. All values are stored as JSON. Cache
// failures are logged and swallowed; callers never see them.
type CacheService struct {
	redis *redis.Client
	local *ccache.Cache[[]byte]
}

// NewCacheService wraps an optional Redis client. Pass nil to run on the
// in-process tier alone.
func NewCacheService(rdb *redis.Client) *CacheService {
	return &CacheService{
		redis: rdb,
		local: ccache.New(ccache.Configure[[]byte]().MaxSize(1000)),
	}
}

// CacheKey joins a prefix and parts into a colon-separated key.
func CacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// Get loads key into dest. Returns false on miss or any cache error.
func (c *CacheService) Get(ctx context.Context, key string, dest interface{}) bool {
	if c.redis != nil {
		raw, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
				return true
			}
			return false
		}
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("cache get error, falling back to memory")
		}
	}

	item := c.local.Get(key)
	if item == nil || item.Expired() {
		return false
	}
	return json.Unmarshal(item.Value(), dest) == nil
}

// Set stores value under key with the given TTL.
func (c *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set: value not serializable")
		return
	}

	if c.redis != nil {
		err := c.redis.Set(ctx, key, raw, ttl).Err()
		if err == nil {
			return
		}
		log.Warn().Err(err).Str("key", key).Msg("cache set error, falling back to memory")
	}
	c.local.Set(key, raw, ttl)
}

// Delete removes a single key from both tiers.
func (c *CacheService) Delete(ctx context.Context, key string) {
	if c.redis != nil {
		if err := c.redis.Del(ctx, key).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache delete error")
		}
	}
	c.local.Delete(key)
}

// DeletePrefix removes every key under prefix from both tiers. Invalidation
// after a successful write is the caller's responsibility.
func (c *CacheService) DeletePrefix(ctx context.Context, prefix string) {
	if c.redis != nil {
		keys, err := c.redis.Keys(ctx, prefix+"*").Result()
		if err != nil {
			log.Warn().Err(err).Str("prefix", prefix).Msg("cache delete prefix error")
		} else if len(keys) > 0 {
			if err := c.redis.Del(ctx, keys...).Err(); err != nil {
				log.Warn().Err(err).Str("prefix", prefix).Msg("cache delete prefix error")
			}
		}
	}
	c.local.DeletePrefix(prefix)
}

// Clear empties the cache.
func (c *CacheService) Clear(ctx context.Context) {
	if c.redis != nil {
		if err := c.redis.FlushDB(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("cache clear error")
		}
	}
	c.local.Clear()
}
