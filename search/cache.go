package search

import (
	"sync"
	"time"

	"creator-compass/internal/models"
)

const defaultCacheCapacity = 32

// QueryCache keeps analyzed results keyed by the raw query string. Lookups
// are exact-match only: no normalization. Capacity is bounded with
// least-recently-used eviction so a long session cannot grow without limit;
// entries older than maxAge are dropped lazily on Get and in bulk by
// Cleanup. A maxAge of zero disables expiry.
type QueryCache struct {
	mu       sync.Mutex
	entries  map[string]*cacheEntry
	capacity int
	maxAge   time.Duration
}

type cacheEntry struct {
	results  []models.VideoResult
	storedAt time.Time
	lastUsed time.Time
}

func NewQueryCache(capacity int, maxAge time.Duration) *QueryCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &QueryCache{
		entries:  make(map[string]*cacheEntry),
		capacity: capacity,
		maxAge:   maxAge,
	}
}

// Get returns the cached results for a query, if present and fresh.
func (c *QueryCache) Get(query string) ([]models.VideoResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[query]
	if !ok {
		return nil, false
	}
	if c.maxAge > 0 && time.Since(e.storedAt) >= c.maxAge {
		delete(c.entries, query)
		return nil, false
	}
	e.lastUsed = time.Now()
	return e.results, true
}

// Put stores results for a query, evicting the least recently used entries
// once capacity is exceeded. The whole value is replaced, never patched.
func (c *QueryCache) Put(query string, results []models.VideoResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	c.entries[query] = &cacheEntry{results: results, storedAt: now, lastUsed: now}

	for len(c.entries) > c.capacity {
		c.evictOldest()
	}
}

func (c *QueryCache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for query, e := range c.entries {
		if oldestKey == "" || e.lastUsed.Before(oldest) {
			oldestKey = query
			oldest = e.lastUsed
		}
	}
	delete(c.entries, oldestKey)
}

// Cleanup removes expired entries and reports how many were dropped.
func (c *QueryCache) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxAge <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-c.maxAge)
	dropped := 0
	for query, e := range c.entries {
		if e.storedAt.Before(cutoff) {
			delete(c.entries, query)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of cached queries.
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
