package watch_test

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/watch"
)

func TestSubscription_Fire(t *testing.T) {
	t.Parallel()

	t.Run("fires once", func(t *testing.T) {
		t.Parallel()

		sub := watch.NewSubscription()
		var calls atomic.Int32
		sub.OnFire(func() { calls.Add(1) })

		assert.False(t, sub.Fired())
		assert.True(t, sub.Fire())
		assert.False(t, sub.Fire())
		assert.True(t, sub.Fired())
		assert.Equal(t, int32(1), calls.Load())

		select {
		case <-sub.Done():
		default:
			t.Fatal("done channel should be closed")
		}
	})

	t.Run("callback registered after fire runs immediately", func(t *testing.T) {
		t.Parallel()

		sub := watch.NewSubscription()
		require.True(t, sub.Fire())

		ran := false
		sub.OnFire(func() { ran = true })
		assert.True(t, ran)
	})

	t.Run("concurrent fire runs callbacks once", func(t *testing.T) {
		t.Parallel()

		sub := watch.NewSubscription()
		var calls atomic.Int32
		sub.OnFire(func() { calls.Add(1) })

		var wg sync.WaitGroup
		var winners atomic.Int32
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if sub.Fire() {
					winners.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), winners.Load())
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("nil callback ignored", func(t *testing.T) {
		t.Parallel()

		sub := watch.NewSubscription()
		sub.OnFire(nil)
		assert.True(t, sub.Fire())
	})
}

func TestManual(t *testing.T) {
	t.Parallel()

	t.Run("trigger fires armed subscriptions and forgets them", func(t *testing.T) {
		t.Parallel()

		m := watch.NewManual()
		a := m.Watch("/res/Views/Home.fr.resx")
		b := m.Watch("/res/Views/../Views/Home.fr.resx")
		other := m.Watch("/res/Views/Home.de.resx")
		assert.Equal(t, 3, m.Pending())

		assert.Equal(t, 2, m.Trigger("/res/Views/Home.fr.resx"))
		assert.True(t, a.Fired())
		assert.True(t, b.Fired())
		assert.False(t, other.Fired())
		assert.Equal(t, 1, m.Pending())

		assert.Equal(t, 0, m.Trigger("/res/Views/Home.fr.resx"))
	})

	t.Run("notify triggers", func(t *testing.T) {
		t.Parallel()

		m := watch.NewManual()
		sub := m.Watch("a.resx")
		require.NoError(t, m.Notify(t.Context(), "a.resx"))
		assert.True(t, sub.Fired())
	})

	t.Run("relative and absolute spellings meet", func(t *testing.T) {
		t.Parallel()

		abs, err := filepath.Abs("res/Home.fr.resx")
		require.NoError(t, err)

		m := watch.NewManual()
		sub := m.Watch("res/Home.fr.resx")
		assert.Equal(t, 1, m.Trigger(abs))
		assert.True(t, sub.Fired())
	})
}

func TestNoop(t *testing.T) {
	t.Parallel()
	assert.Nil(t, watch.Noop{}.Watch("anything"))
}

func TestMulti(t *testing.T) {
	t.Parallel()

	t.Run("any inner watcher fires the combined subscription", func(t *testing.T) {
		t.Parallel()

		first := watch.NewManual()
		second := watch.NewManual()
		multi := watch.Multi{first, watch.Noop{}, second}

		sub := multi.Watch("x.resx")
		require.NotNil(t, sub)

		var calls atomic.Int32
		sub.OnFire(func() { calls.Add(1) })

		assert.Equal(t, 1, second.Trigger("x.resx"))
		assert.True(t, sub.Fired())
		assert.Equal(t, int32(1), calls.Load())

		// the sibling subscription was retired together with the combined one
		assert.Equal(t, 0, first.Trigger("x.resx"))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("single inner subscription is returned as is", func(t *testing.T) {
		t.Parallel()

		m := watch.NewManual()
		sub := watch.Multi{watch.Noop{}, m}.Watch("y.resx")
		require.NotNil(t, sub)
		m.Trigger("y.resx")
		assert.True(t, sub.Fired())
	})

	t.Run("no inner subscription yields nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, watch.Multi{watch.Noop{}}.Watch("z.resx"))
	})
}

func TestNotifiers(t *testing.T) {
	t.Parallel()

	a := watch.NewManual()
	b := watch.NewManual()
	subA := a.Watch("p.resx")
	subB := b.Watch("p.resx")

	require.NoError(t, watch.Notifiers{a, b}.Notify(t.Context(), "p.resx"))
	assert.True(t, subA.Fired())
	assert.True(t, subB.Fired())
}
