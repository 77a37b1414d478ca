package report

import (
	"sync"
	"time"
)

const DefaultCacheTTL = 30 * time.Second

// Cache holds the last successfully fetched Bundle for a fixed window.
type Cache struct {
	mu     sync.RWMutex
	ttl    time.Duration
	now    func() time.Time
	bundle *Bundle
}

// NewCache returns a cache keeping bundles for `ttl`. A nil `now` uses time.Now.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{ttl: ttl, now: now}
}

// Get returns the cached bundle if it was fetched less than one window ago.
func (c *Cache) Get() (Bundle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.bundle == nil || c.now().Sub(c.bundle.FetchedAt) >= c.ttl {
		return Bundle{}, false
	}
	return *c.bundle, true
}

// Put replaces the cached bundle.
func (c *Cache) Put(b Bundle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bundle = &b
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bundle = nil
}

func (c *Cache) Now() time.Time { return c.now() }

func (c *Cache) TTL() time.Duration { return c.ttl }
