package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/cache"
)

func TestLRUCache_GetPut(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](3)
	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("a", 10)
	v, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRUCache_Eviction(t *testing.T) {
	t.Parallel()

	t.Run("least recently used goes first", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRUCache[string, int](3)
		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		c.Get("a")
		c.Put("d", 4)

		_, ok := c.Get("b")
		assert.False(t, ok, "b should have been evicted")
		assert.Equal(t, []string{"d", "a", "c"}, c.Keys())
	})

	t.Run("callback sees overflow, remove and clear", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRUCache[string, int](2)
		evicted := make(map[string]int)
		c.SetEvictCallback(func(key string, value int) { evicted[key] = value })

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)
		assert.Equal(t, map[string]int{"a": 1}, evicted)

		assert.True(t, c.Remove("b"))
		assert.False(t, c.Remove("b"))
		assert.Equal(t, 2, evicted["b"])

		c.Clear()
		assert.Equal(t, 3, evicted["c"])
		assert.Equal(t, 0, c.Len())
	})
}

func TestLRUCache_GetOrAdd(t *testing.T) {
	t.Parallel()

	t.Run("first value wins", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRUCache[string, string](2)

		v, loaded := c.GetOrAdd("k", "first")
		assert.False(t, loaded)
		assert.Equal(t, "first", v)

		v, loaded = c.GetOrAdd("k", "second")
		assert.True(t, loaded)
		assert.Equal(t, "first", v)
	})

	t.Run("concurrent callers agree", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRUCache[string, *int](4)
		results := make([]*int, 32)

		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v := i
				results[i], _ = c.GetOrAdd("shared", &v)
			}()
		}
		wg.Wait()

		require.NotNil(t, results[0])
		for _, r := range results {
			assert.Same(t, results[0], r)
		}
	})
}

func TestLRUCache_ZeroCapacity(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { cache.NewLRUCache[string, int](0) })
}
