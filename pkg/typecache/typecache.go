package typecache

import (
	"errors"
	"runtime"
	"sync"
	"weak"
)

// ErrNilValue is returned when a create callback yields a nil value.
var ErrNilValue = errors.New("typecache: create returned nil")

// Cache maps derivation keys to canonical values without owning them.
// Entries hold weak pointers, and a cleanup registered on each stored
// value clears its slot once the value is reclaimed, so the cache
// never keeps a value alive by itself.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]weak.Pointer[V]
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]weak.Pointer[V])}
}

// Get returns the live value for key, if any.
func (c *Cache[K, V]) Get(key K) (*V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wp, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	v := wp.Value()
	if v == nil {
		delete(c.entries, key)
		return nil, false
	}
	return v, true
}

// GetOrCreate returns the live value for key, invoking create on a
// miss and caching the result. While any returned pointer for a key is
// still referenced, later calls with an equal key return the identical
// pointer. A create failure caches nothing and surfaces the error
// unchanged.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (*V, error)) (*V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if wp, ok := c.entries[key]; ok {
		if v := wp.Value(); v != nil {
			return v, nil
		}
		delete(c.entries, key)
	}

	v, err := create()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNilValue
	}

	wp := weak.Make(v)
	c.entries[key] = wp
	runtime.AddCleanup(v, func(key K) { c.evict(key, wp) }, key)
	return v, nil
}

// evict clears key only while it still holds the same weak handle; a
// newer value stored under the key after collection is left alone.
func (c *Cache[K, V]) evict(key K, wp weak.Pointer[V]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.entries[key]; ok && cur == wp {
		delete(c.entries, key)
	}
}

// Remove drops the entry for key regardless of liveness. The value
// itself is untouched; only the canonical mapping is forgotten.
func (c *Cache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len counts entries whose values are still live, dropping stale slots
// along the way.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key, wp := range c.entries {
		if wp.Value() == nil {
			delete(c.entries, key)
			continue
		}
		n++
	}
	return n
}
