package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCacheGetSet(t *testing.T) {
	c := NewQueryCache()

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(1, &CachedQuery{SQL: "SELECT 1;"})
	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "SELECT 1;", got.SQL)

	// Overwrite wins.
	c.Set(1, &CachedQuery{SQL: "SELECT 2;"})
	got, _ = c.Get(1)
	assert.Equal(t, "SELECT 2;", got.SQL)
}

func TestQueryCacheConcurrentAccess(t *testing.T) {
	c := NewQueryCache()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			for j := uint64(0); j < 100; j++ {
				c.Set(n*1000+j, &CachedQuery{SQL: "x"})
				c.Get(n * 1000)
			}
		}(uint64(i))
	}
	wg.Wait()
}

func TestLRUQueryCacheEvicts(t *testing.T) {
	c, err := NewLRUQueryCache(2)
	require.NoError(t, err)

	c.Set(1, &CachedQuery{SQL: "a"})
	c.Set(2, &CachedQuery{SQL: "b"})
	c.Set(3, &CachedQuery{SQL: "c"})

	_, ok := c.Get(1)
	assert.False(t, ok)
	got, ok := c.Get(3)
	require.True(t, ok)
	assert.Equal(t, "c", got.SQL)
}

func TestLRUQueryCacheRejectsBadSize(t *testing.T) {
	_, err := NewLRUQueryCache(0)
	assert.Error(t, err)
}
