package news

import (
	"sync"
	"time"
)

const DefaultCacheTTL = 15 * time.Minute

type Clock func() time.Time

// Cache holds per-category article snapshots for a fixed window to avoid
// redundant index calls. Expired and absent entries behave identically.
type Cache struct {
	ttl time.Duration
	now Clock

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	articles   []Article
	capturedAt time.Time
}

func NewCache(ttl time.Duration, now Clock) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *Cache) Get(category string) ([]Article, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[category]
	if !ok || c.now().Sub(entry.capturedAt) >= c.ttl {
		return nil, false
	}
	return entry.articles, true
}

func (c *Cache) Put(category string, articles []Article) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[category] = cacheEntry{articles: articles, capturedAt: c.now()}
}
