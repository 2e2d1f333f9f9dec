// Package typecache provides a weak, non-owning registry that gives
// canonical identity to values derived from a comparable key.
//
// The cache is built for type-handle deduplication: repeated requests
// for "the same" derived type should return the identical object, but
// the cache must never be the sole owner keeping that object alive.
// Entries are weak pointers backed by a runtime cleanup that clears
// the slot once the value has been reclaimed, so an unreferenced value
// is collectable and a later request with the same key legitimately
// creates a fresh one.
//
// # Usage
//
//	import "github.com/dmitrymomot/newtype/pkg/typecache"
//
//	cache := typecache.New[int, Member]()
//
//	member, err := cache.GetOrCreate(2, func() (*Member, error) {
//		return buildMember(2)
//	})
//
// A second GetOrCreate(2, ...) performed while member is still
// referenced returns the identical pointer without invoking the
// callback.
//
// # Concurrency
//
// All methods are safe for concurrent use; a single mutex serializes
// access. Two goroutines racing on the first creation of the same key
// are serialized, so the callback runs once per live key.
package typecache
