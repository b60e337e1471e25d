package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/watch"
)

func TestFSWatcher(t *testing.T) {
	t.Parallel()

	t.Run("write fires subscription", func(t *testing.T) {
		t.Parallel()

		w, err := watch.NewFSWatcher()
		require.NoError(t, err)
		t.Cleanup(func() { _ = w.Close() })

		dir := t.TempDir()
		path := filepath.Join(dir, "Home.fr.resx")
		require.NoError(t, os.WriteFile(path, []byte("<root/>"), 0o644))

		sub := w.Watch(path)
		require.NotNil(t, sub)

		require.NoError(t, os.WriteFile(path, []byte("<root></root>"), 0o644))
		require.Eventually(t, sub.Fired, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("creating a missing file fires subscription", func(t *testing.T) {
		t.Parallel()

		w, err := watch.NewFSWatcher()
		require.NoError(t, err)
		t.Cleanup(func() { _ = w.Close() })

		dir := t.TempDir()
		path := filepath.Join(dir, "Home.de.resx")

		sub := w.Watch(path)
		require.NotNil(t, sub)

		require.NoError(t, os.WriteFile(path, []byte("<root/>"), 0o644))
		require.Eventually(t, sub.Fired, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("sibling changes do not fire", func(t *testing.T) {
		t.Parallel()

		w, err := watch.NewFSWatcher()
		require.NoError(t, err)
		t.Cleanup(func() { _ = w.Close() })

		dir := t.TempDir()
		sub := w.Watch(filepath.Join(dir, "a.resx"))
		require.NotNil(t, sub)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.resx"), []byte("x"), 0o644))
		time.Sleep(100 * time.Millisecond)
		assert.False(t, sub.Fired())
	})

	t.Run("missing directory yields nil", func(t *testing.T) {
		t.Parallel()

		w, err := watch.NewFSWatcher()
		require.NoError(t, err)
		t.Cleanup(func() { _ = w.Close() })

		assert.Nil(t, w.Watch(filepath.Join(t.TempDir(), "nope", "a.resx")))
	})

	t.Run("closed watcher yields nil", func(t *testing.T) {
		t.Parallel()

		w, err := watch.NewFSWatcher()
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.NoError(t, w.Close())

		assert.Nil(t, w.Watch(filepath.Join(t.TempDir(), "a.resx")))
	})
}
