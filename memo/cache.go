package memo

import (
	"math/bits"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Cache stores memoized results. Implementations must be safe for concurrent use.
// Eviction is up to the implementation; the caches in this package never evict.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
}

// MapCache is a Cache backed by a map guarded by a read-write mutex.
type MapCache[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func NewMapCache[K comparable, V any]() *MapCache[K, V] {
	return &MapCache[K, V]{m: make(map[K]V)}
}

func (c *MapCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *MapCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = value
}

func (c *MapCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
}

func (c *MapCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

func (c *MapCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}

// ShardedCache spreads string keys over several MapCaches to reduce lock contention.
// A key's shard is chosen by its xxhash.
type ShardedCache[V any] struct {
	shards []*MapCache[string, V]
	mask   uint64
}

// NewShardedCache creates a cache with n shards, rounded up to a power of two.
func NewShardedCache[V any](n int) *ShardedCache[V] {
	if n < 1 {
		n = 1
	}
	size := 1 << bits.Len(uint(n-1))
	shards := make([]*MapCache[string, V], size)
	for i := range shards {
		shards[i] = NewMapCache[string, V]()
	}
	return &ShardedCache[V]{shards: shards, mask: uint64(size - 1)}
}

func (c *ShardedCache[V]) shard(key string) *MapCache[string, V] {
	return c.shards[xxhash.Sum64String(key)&c.mask]
}

func (c *ShardedCache[V]) Get(key string) (V, bool) {
	return c.shard(key).Get(key)
}

func (c *ShardedCache[V]) Set(key string, value V) {
	c.shard(key).Set(key, value)
}

func (c *ShardedCache[V]) Delete(key string) {
	c.shard(key).Delete(key)
}

func (c *ShardedCache[V]) Len() int {
	n := 0
	for _, s := range c.shards {
		n += s.Len()
	}
	return n
}

func (c *ShardedCache[V]) Clear() {
	for _, s := range c.shards {
		s.Clear()
	}
}

// Shards reports the number of shards.
func (c *ShardedCache[V]) Shards() int {
	return len(c.shards)
}
