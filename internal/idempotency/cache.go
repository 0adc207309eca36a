// Package idempotency holds a short-lived, per-process cache of recent results. It is a fast
// path only: correctness rests on the database uniqueness constraints, so a miss (or a second
// instance with its own cache) only costs a query.
package idempotency

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultTTL  = 5 * time.Minute
	DefaultSize = 10000
)

type Cache[V any] struct {
	lru *expirable.LRU[string, V]
}

// New creates a cache bounded by size whose entries expire after ttl.
// Expired entries are evicted in the background by the underlying LRU.
func New[V any](size int, ttl time.Duration) *Cache[V] {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[V]{lru: expirable.NewLRU[string, V](size, nil, ttl)}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

func (c *Cache[V]) Put(key string, value V) {
	c.lru.Add(key, value)
}

func (c *Cache[V]) Forget(key string) {
	c.lru.Remove(key)
}

func (c *Cache[V]) Len() int {
	return c.lru.Len()
}
