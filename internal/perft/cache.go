package perft

import (
	"sync"
	"sync/atomic"
)

// Cache remembers subtree node counts by position hash and depth.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(hash uint64, depth int) (nodes uint64, ok bool)
	Put(hash uint64, depth int, nodes uint64)
}

// Number of shards for locking (power of 2 for fast modulo)
const shardCount = 256
const shardMask = shardCount - 1

type entry struct {
	key   uint64
	nodes uint64
	depth int32
}

// MemoryCache is a fixed-size, always-replace hash table with sharded locks.
type MemoryCache struct {
	entries []entry
	shards  [shardCount]sync.RWMutex
	mask    uint64

	hits   atomic.Uint64
	probes atomic.Uint64
}

// NewMemoryCache creates a cache of roughly sizeMB megabytes.
func NewMemoryCache(sizeMB int) *MemoryCache {
	n := roundDownToPowerOf2(uint64(sizeMB) * 1024 * 1024 / 24)
	if n < shardCount {
		n = shardCount
	}
	return &MemoryCache{
		entries: make([]entry, n),
		mask:    n - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// slot mixes the depth into the index so one position can keep counts for
// several depths.
func (c *MemoryCache) slot(hash uint64, depth int) uint64 {
	return (hash ^ uint64(depth)*0x9E3779B97F4A7C15) & c.mask
}

// Get returns the stored count for hash at depth.
func (c *MemoryCache) Get(hash uint64, depth int) (uint64, bool) {
	c.probes.Add(1)
	idx := c.slot(hash, depth)
	shard := idx & shardMask

	c.shards[shard].RLock()
	e := c.entries[idx]
	c.shards[shard].RUnlock()

	if e.key == hash && e.depth == int32(depth) {
		c.hits.Add(1)
		return e.nodes, true
	}
	return 0, false
}

// Put stores a count, evicting whatever shared its slot.
func (c *MemoryCache) Put(hash uint64, depth int, nodes uint64) {
	idx := c.slot(hash, depth)
	shard := idx & shardMask

	c.shards[shard].Lock()
	c.entries[idx] = entry{key: hash, nodes: nodes, depth: int32(depth)}
	c.shards[shard].Unlock()
}

// HitRate returns the cache hit rate as a percentage.
func (c *MemoryCache) HitRate() float64 {
	probes := c.probes.Load()
	if probes == 0 {
		return 0
	}
	return float64(c.hits.Load()) / float64(probes) * 100
}

// Clear empties the cache and resets its statistics.
func (c *MemoryCache) Clear() {
	for i := range c.shards {
		c.shards[i].Lock()
	}
	for i := range c.entries {
		c.entries[i] = entry{}
	}
	for i := range c.shards {
		c.shards[i].Unlock()
	}
	c.hits.Store(0)
	c.probes.Store(0)
}
