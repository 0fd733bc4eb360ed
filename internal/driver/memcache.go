package driver

import "sync"

// MemCache is a per-process cache of transpile payloads keyed by CacheKey.
// It keeps at most limit entries and drops the oldest first.
type MemCache struct {
	mu      sync.RWMutex
	byKey   map[Digest]*DiskPayload
	order   []Digest
	limit   int
	hits    int
	lookups int
}

// NewMemCache creates a MemCache; limit <= 0 means 256 entries.
func NewMemCache(limit int) *MemCache {
	if limit <= 0 {
		limit = 256
	}
	return &MemCache{byKey: make(map[Digest]*DiskPayload, min(limit, 64)), limit: limit}
}

// Get returns the payload stored under key.
func (c *MemCache) Get(key Digest) (*DiskPayload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookups++
	p, ok := c.byKey[key]
	if ok {
		c.hits++
	}
	return p, ok
}

// Put stores payload under key, evicting the oldest entry when full.
func (c *MemCache) Put(key Digest, payload *DiskPayload) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byKey[key]; ok {
		c.byKey[key] = payload
		return
	}
	if len(c.order) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.byKey, oldest)
	}
	c.byKey[key] = payload
	c.order = append(c.order, key)
}

// Len returns the number of stored entries.
func (c *MemCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byKey)
}

// Stats returns hits and total lookups.
func (c *MemCache) Stats() (hits, lookups int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.lookups
}
