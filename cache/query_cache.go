package cache

import "sync"

// CachedQuery holds rendered statement text. Only bind-free statements are
// cached; anything carrying bind values is rendered fresh per call.
type CachedQuery struct {
	SQL string
}

type QueryCache interface {
	Get(fingerprint uint64) (*CachedQuery, bool)
	Set(fingerprint uint64, q *CachedQuery)
}

type memQueryCache struct {
	mu   sync.RWMutex
	data map[uint64]*CachedQuery
}

// NewQueryCache returns an unbounded map-backed cache. Suitable when the set
// of distinct statement shapes is small and stable.
func NewQueryCache() QueryCache {
	return &memQueryCache{
		data: make(map[uint64]*CachedQuery, 1024),
	}
}

func (c *memQueryCache) Get(f uint64) (*CachedQuery, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q, ok := c.data[f]
	return q, ok
}

func (c *memQueryCache) Set(f uint64, q *CachedQuery) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[f] = q
}
