package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/platoplan/planner/internal/domain"
)

// cacheItem represents a single cached plan with its expiration
type cacheItem struct {
	Plan       *domain.CachedPlan
	Expiration time.Time
}

// MemoryCache is a thread-safe in-memory plan cache with TTL support.
// Entries are keyed by "<weekStart>-<userID>" and never persisted; the
// cache lives for the application session only.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory plan cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	// Start cleanup goroutine to remove expired entries every 10 minutes
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a cached plan. Expired entries act as a miss; they are
// left for the cleanup goroutine to collect.
func (c *MemoryCache) Get(ctx context.Context, key string) (*domain.CachedPlan, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if !time.Now().Before(item.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	return item.Plan, nil
}

// Set stores a plan in the cache with TTL, stamping the current time.
func (c *MemoryCache) Set(ctx context.Context, key string, plan *domain.CachedPlan, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	plan.CachedAt = now
	c.data[key] = cacheItem{
		Plan:       plan,
		Expiration: now.Add(ttl),
	}

	return nil
}

// Delete removes a single entry from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// DeleteForUser removes every entry whose key contains the user id.
// Used when external state changes (e.g. inventory updates) may
// invalidate the user's recommendations.
func (c *MemoryCache) DeleteForUser(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrInvalidRequest
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key := range c.data {
		if strings.Contains(key, userID) {
			delete(c.data, key)
		}
	}
	return nil
}

// Clear removes all entries from the cache
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]cacheItem)
	return nil
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.Expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}
