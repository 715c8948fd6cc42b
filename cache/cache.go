// Package cache implements the region-scoped, append-only ordered sets the
// paletted-container decoder deduplicates block and biome palette entries
// into. An index, once assigned, never changes; lookups are amortized
// O(1) via a secondary hash index over the linearly-growing vector —
// the source this format was learned from does a linear scan instead,
// which this package replaces for correct asymptotic behavior while
// keeping the same append-only, instance-scoped shape.
//
// Both cache types are safe for concurrent InsertOrLookup calls: a chunk
// decode may run on its own goroutine per §5's "parallelise across the
// 1024 slots" allowance, and the caches are the one piece of state they
// share, so each guards itself with a mutex rather than pushing that onto
// every caller.
package cache

import "sync"

// BlockProperties identifies a block palette entry: its registry name and
// its ordered list of (key, value) state properties, e.g.
// minecraft:furnace + [facing=north, lit=false].
type BlockProperties struct {
	Name       string
	Properties []KV
}

// KV is a single block-state property pair.
type KV struct {
	Key   string
	Value string
}

func (b BlockProperties) identity() string {
	s := b.Name + "|"
	for _, kv := range b.Properties {
		s += kv.Key + "=" + kv.Value + ";"
	}
	return s
}

// BlockCache is an append-only ordered set of BlockProperties, scoped to a
// single Region's lifetime.
type BlockCache struct {
	mu      sync.Mutex
	entries []BlockProperties
	index   map[string]int
}

// NewBlockCache returns an empty BlockCache.
func NewBlockCache() *BlockCache {
	return &BlockCache{index: make(map[string]int)}
}

// InsertOrLookup returns entry's zero-based index, inserting it at the end
// if not already present. The index first assigned to an entry never
// changes.
func (c *BlockCache) InsertOrLookup(entry BlockProperties) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := entry.identity()
	if i, ok := c.index[id]; ok {
		return i
	}
	i := len(c.entries)
	c.entries = append(c.entries, entry)
	c.index[id] = i
	return i
}

// At returns the entry previously assigned index i.
func (c *BlockCache) At(i int) BlockProperties {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[i]
}

// Size returns the number of distinct entries inserted so far.
func (c *BlockCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// BiomeCache is the biome analogue of BlockCache: an append-only ordered
// set of biome registry name strings.
type BiomeCache struct {
	mu      sync.Mutex
	entries []string
	index   map[string]int
}

// NewBiomeCache returns an empty BiomeCache.
func NewBiomeCache() *BiomeCache {
	return &BiomeCache{index: make(map[string]int)}
}

// InsertOrLookup returns name's zero-based index, inserting it at the end
// if not already present.
func (c *BiomeCache) InsertOrLookup(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i, ok := c.index[name]; ok {
		return i
	}
	i := len(c.entries)
	c.entries = append(c.entries, name)
	c.index[name] = i
	return i
}

// At returns the biome name previously assigned index i.
func (c *BiomeCache) At(i int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[i]
}

// Size returns the number of distinct entries inserted so far.
func (c *BiomeCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
