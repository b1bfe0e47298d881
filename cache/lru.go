package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

type lruQueryCache struct {
	cache *lru.Cache[uint64, *CachedQuery]
}

// NewLRUQueryCache returns a bounded cache evicting least recently used
// entries. size must be positive.
func NewLRUQueryCache(size int) (QueryCache, error) {
	c, err := lru.New[uint64, *CachedQuery](size)
	if err != nil {
		return nil, err
	}
	return &lruQueryCache{cache: c}, nil
}

func (c *lruQueryCache) Get(f uint64) (*CachedQuery, bool) {
	return c.cache.Get(f)
}

func (c *lruQueryCache) Set(f uint64, q *CachedQuery) {
	c.cache.Add(f, q)
}
