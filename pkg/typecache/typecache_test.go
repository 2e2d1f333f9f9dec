package typecache_test

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newtype/pkg/typecache"
)

type member struct {
	id int
}

func TestGetOrCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates on miss and returns the identical pointer after", func(t *testing.T) {
		t.Parallel()
		c := typecache.New[int, member]()

		calls := 0
		create := func() (*member, error) {
			calls++
			return &member{id: 2}, nil
		}

		first, err := c.GetOrCreate(2, create)
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := c.GetOrCreate(2, create)
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("distinct keys create distinct values", func(t *testing.T) {
		t.Parallel()
		c := typecache.New[int, member]()

		a, err := c.GetOrCreate(1, func() (*member, error) { return &member{id: 1}, nil })
		require.NoError(t, err)
		b, err := c.GetOrCreate(2, func() (*member, error) { return &member{id: 2}, nil })
		require.NoError(t, err)

		assert.NotSame(t, a, b)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("create failure caches nothing", func(t *testing.T) {
		t.Parallel()
		c := typecache.New[int, member]()
		boom := errors.New("boom")

		_, err := c.GetOrCreate(1, func() (*member, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, c.Len())

		v, err := c.GetOrCreate(1, func() (*member, error) { return &member{id: 1}, nil })
		require.NoError(t, err)
		assert.NotNil(t, v)
	})

	t.Run("nil value is rejected", func(t *testing.T) {
		t.Parallel()
		c := typecache.New[int, member]()

		_, err := c.GetOrCreate(1, func() (*member, error) { return nil, nil })
		assert.ErrorIs(t, err, typecache.ErrNilValue)
	})
}

func TestGet(t *testing.T) {
	t.Parallel()

	c := typecache.New[string, member]()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	v, err := c.GetOrCreate("a", func() (*member, error) { return &member{id: 1}, nil })
	require.NoError(t, err)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Same(t, v, got)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	c := typecache.New[string, member]()

	first, err := c.GetOrCreate("a", func() (*member, error) { return &member{id: 1}, nil })
	require.NoError(t, err)

	c.Remove("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	second, err := c.GetOrCreate("a", func() (*member, error) { return &member{id: 2}, nil })
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestEntriesAreNonOwning(t *testing.T) {
	t.Parallel()

	c := typecache.New[int, member]()

	func() {
		v, err := c.GetOrCreate(7, func() (*member, error) { return &member{id: 7}, nil })
		require.NoError(t, err)
		require.Equal(t, 7, v.id)
	}()

	// With no external reference left, the entry must become
	// collectable; the cache alone never keeps a value alive.
	assert.Eventually(t, func() bool {
		runtime.GC()
		_, ok := c.Get(7)
		return !ok
	}, 5*time.Second, 10*time.Millisecond)

	// A later request with the same key builds a fresh value.
	v, err := c.GetOrCreate(7, func() (*member, error) { return &member{id: 70}, nil })
	require.NoError(t, err)
	assert.Equal(t, 70, v.id)
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := typecache.New[int, member]()
	done := make(chan *member, 16)

	for range 16 {
		go func() {
			v, _ := c.GetOrCreate(1, func() (*member, error) { return &member{id: 1}, nil })
			done <- v
		}()
	}

	first := <-done
	for range 15 {
		assert.Same(t, first, <-done)
	}
}
