package localizer_test

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/localizer"
	"github.com/dmitrymomot/resxkit/pkg/resx"
)

// countingFallback records how often the compiled tier is consulted.
type countingFallback struct {
	localizer.MapFallback
	lookups atomic.Int32

	mu  sync.Mutex
	err error // returned by Lookup instead of consulting the map when set
}

func (f *countingFallback) Lookup(name string, c i18n.Culture) (string, error) {
	f.lookups.Add(1)
	f.mu.Lock()
	err := f.err
	f.mu.Unlock()
	if err != nil {
		return "", err
	}
	return f.MapFallback.Lookup(name, c)
}

func writeOverride(t *testing.T, path string, records map[string]string) {
	t.Helper()

	doc := resx.NewDocument()
	for name, value := range records {
		require.NoError(t, doc.Set(name, value))
	}
	require.NoError(t, resx.WriteFile(path, doc))
}

func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
