package glyph

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// DefaultCacheCapacity is the number of glyphs a CachedRasterizer keeps
// when no capacity is given.
const DefaultCacheCapacity = 1024

// CacheStats holds cache statistics.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// CachedRasterizer keeps the most recently rasterized glyphs of another
// Rasterizer. Errors are not cached.
//
// Cached glyphs are shared between callers and must not be modified.
//
// CachedRasterizer is safe for concurrent use. Misses are serialized, so
// the wrapped Rasterizer is never called from two goroutines at once.
type CachedRasterizer struct {
	next     Rasterizer
	capacity int

	mu      sync.Mutex
	entries map[rune]*list.Element
	lru     *list.List // front is most recent

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type cacheEntry struct {
	r rune
	g *Glyph
}

// NewCachedRasterizer wraps r with an LRU cache of capacity glyphs.
// If capacity <= 0, DefaultCacheCapacity is used.
func NewCachedRasterizer(r Rasterizer, capacity int) *CachedRasterizer {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &CachedRasterizer{
		next:     r,
		capacity: capacity,
		entries:  make(map[rune]*list.Element),
		lru:      list.New(),
	}
}

// Rasterize returns the cached glyph for r or rasterizes it.
func (c *CachedRasterizer) Rasterize(r rune) (*Glyph, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[r]; ok {
		c.lru.MoveToFront(e)
		c.hits.Add(1)
		return e.Value.(cacheEntry).g, nil
	}
	c.misses.Add(1)

	g, err := c.next.Rasterize(r)
	if err != nil {
		return nil, err
	}

	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(cacheEntry).r)
		c.evictions.Add(1)
	}
	c.entries[r] = c.lru.PushFront(cacheEntry{r: r, g: g})
	return g, nil
}

// Len returns the number of cached glyphs.
func (c *CachedRasterizer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Clear removes all cached glyphs. Statistics are kept.
func (c *CachedRasterizer) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[rune]*list.Element)
	c.lru.Init()
}

// Stats returns current cache statistics.
func (c *CachedRasterizer) Stats() CacheStats {
	return CacheStats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
