package stats

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// resultCache keeps recent aggregate reads in memory with time-based
// expiration. Aggregates may lag the ledger by up to the TTL.
type resultCache struct {
	lru *expirable.LRU[string, any]
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	return &resultCache{
		lru: expirable.NewLRU[string, any](size, nil, ttl),
	}
}

func (c *resultCache) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

func (c *resultCache) Set(key string, value any) {
	c.lru.Add(key, value)
}

// Clear removes all entries from the cache.
func (c *resultCache) Clear() {
	c.lru.Purge()
}
