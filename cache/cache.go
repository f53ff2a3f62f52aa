// Package cache memoizes lowered class units by file content.
package cache

import (
	"sync"

	"github.com/TFMV/surrealhcc/types"
	"github.com/cespare/xxhash/v2"
	"github.com/golang/groupcache/lru"
)

// key identifies one version of one file.
type key struct {
	path   string
	digest uint64
}

// UnitCache caches the class units lowered from a file's content.
type UnitCache struct {
	cache *lru.Cache
	mu    sync.RWMutex // Mutex for thread safety

	hits   uint64
	misses uint64
}

// NewUnitCache creates a new UnitCache holding at most size files.
func NewUnitCache(size int) *UnitCache {
	return &UnitCache{
		cache: lru.New(size),
	}
}

// Digest hashes file content.
func Digest(content []byte) uint64 {
	return xxhash.Sum64(content)
}

// Get returns the cached units for path at the given content, if available.
func (c *UnitCache) Get(path string, content []byte) ([]types.ClassUnit, bool) {
	if c == nil {
		return nil, false
	}
	k := key{path: path, digest: Digest(content)}

	// lru.Get reorders the list, so it needs the write lock.
	c.mu.Lock()
	defer c.mu.Unlock()
	if val, ok := c.cache.Get(k); ok {
		c.hits++
		return val.([]types.ClassUnit), true
	}
	c.misses++
	return nil, false
}

// Put stores the units lowered from content.
func (c *UnitCache) Put(path string, content []byte, units []types.ClassUnit) {
	if c == nil {
		return
	}
	k := key{path: path, digest: Digest(content)}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(k, units)
}

// Len returns the number of cached files.
func (c *UnitCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Stats returns the hit and miss counts.
func (c *UnitCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Clear clears the cache.
func (c *UnitCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Clear()
}
