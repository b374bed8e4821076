package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
)

// CacheConfig sizes the identity cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the defaults used when USER_CACHE_* is unset
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats is a snapshot of cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedUserEntry wraps a user with version metadata for cache invalidation
type cachedUserEntry struct {
	Version string
	User    domain.User
}

// userCache maps (platform, platform_id) to a resolved user. Entries expire
// after the TTL; a schema version bump invalidates old entries on read.
type userCache struct {
	lru    *expirable.LRU[string, *cachedUserEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newUserCache(cfg CacheConfig) *userCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &userCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](cfg.Size, nil, cfg.TTL),
	}
}

func cacheKey(platform, platformID string) string {
	return platform + ":" + platformID
}

// Get returns a copy of the cached user
func (c *userCache) Get(platform, platformID string) (*domain.User, bool) {
	key := cacheKey(platform, platformID)
	entry, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	u := entry.User
	return &u, true
}

// Set stores a copy of user
func (c *userCache) Set(platform, platformID string, user *domain.User) {
	c.lru.Add(cacheKey(platform, platformID), &cachedUserEntry{
		Version: CacheSchemaVersion,
		User:    *user,
	})
}

// Invalidate removes one identity
func (c *userCache) Invalidate(platform, platformID string) {
	c.lru.Remove(cacheKey(platform, platformID))
}

// Clear removes all entries
func (c *userCache) Clear() {
	c.lru.Purge()
}

// GetStats returns hit/miss counters and the current size
func (c *userCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
