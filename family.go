package newtype

import (
	"fmt"

	"github.com/dmitrymomot/newtype/pkg/typecache"
)

// Family is a parametrized set of derived types over the same base,
// such as "mnemonic phrase of N words". Members are identified by a
// comparable derivation key: while any previously returned member for
// a key is still referenced, Get with an equal key returns the
// identical *Type. Once every reference to a member is gone its cache
// slot may be reclaimed, and a later request builds an equivalent
// fresh member.
type Family[K comparable, B any] struct {
	name  string
	build func(K) Descriptor[B]
	cache *typecache.Cache[K, Type[B]]
}

// NewFamily declares a family. build produces the member descriptor
// for a key and is invoked at most once per live key. A descriptor
// with no name is named "family[key]".
func NewFamily[K comparable, B any](name string, build func(K) Descriptor[B]) *Family[K, B] {
	return &Family[K, B]{
		name:  name,
		build: build,
		cache: typecache.New[K, Type[B]](),
	}
}

// Name returns the family name.
func (f *Family[K, B]) Name() string { return f.name }

// Get returns the member for key, declaring it on first use. A
// descriptor that fails to declare surfaces its ConfigurationError and
// caches nothing.
func (f *Family[K, B]) Get(key K) (*Type[B], error) {
	return f.cache.GetOrCreate(key, func() (*Type[B], error) {
		d := f.build(key)
		if d.Name == "" {
			d.Name = fmt.Sprintf("%s[%v]", f.name, key)
		}
		return Declare(d)
	})
}

// MustGet is Get for load-time member declarations; it panics on a
// ConfigurationError.
func (f *Family[K, B]) MustGet(key K) *Type[B] {
	t, err := f.Get(key)
	if err != nil {
		panic(err)
	}
	return t
}
