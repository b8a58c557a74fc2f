// Package journal wraps the API bindings with query caching,
// invalidation and user-facing notifications.
package journal

import (
	"sync"
	"time"
)

// Cache keys, one per entity and scope. Mutations invalidate their own
// key plus the keys of related entities.
const (
	KeyTrades     = "trades/list"
	KeyTradeIdeas = "trade-ideas/list"
	KeyLiveTrades = "live-trades/list"
)

// KeyExecutions is the cache key for one trade's execution list.
func KeyExecutions(tradeID string) string {
	return "executions/trade/" + tradeID
}

type cacheEntry struct {
	value     interface{}
	fetchedAt time.Time
}

// Cache is the client-side cache of query results, keyed by
// entity+scope. Entries older than the staleness window are refetched
// on the next read. Only the query/mutation layer touches the cache;
// consumers receive copies.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	staleAfter time.Duration
	now        func() time.Time
}

// NewCache creates a cache with the given staleness window.
func NewCache(staleAfter time.Duration) *Cache {
	if staleAfter <= 0 {
		staleAfter = time.Hour
	}
	return &Cache{
		entries:    make(map[string]cacheEntry),
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// get returns the cached value for key if it is still fresh.
func (c *Cache) get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) > c.staleAfter {
		return nil, false
	}
	return entry.value, true
}

func (c *Cache) put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, fetchedAt: c.now()}
}

// Invalidate drops the given keys so the next read refetches.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

// InvalidateAll drops every entry. Called when the application regains
// focus so stale data is refetched on the next read.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
