package localizer_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/localizer"
)

type homeView struct{}

func TestFactory_Create(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	calls := 0
	source := localizer.FallbackSourceFunc(func(path string) (localizer.Fallback, error) {
		calls++
		return localizer.MapFallback{"fr-FR": {"Title": "compiled " + path}}, nil
	})

	f, err := localizer.NewFactory(source, localizer.WithResourcesPath(root), localizer.WithResolverCacheSize(2))
	require.NoError(t, err)
	t.Cleanup(f.Close)

	a, err := f.Create("Views.Home")
	require.NoError(t, err)
	b, err := f.Create("Views.Home")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "compiled Views.Home", a.GetIn(frFR, "Title").Value)

	writeOverride(t, filepath.Join(root, "Views", "About.fr-FR.resx"), map[string]string{"Title": "À propos"})
	about, err := f.Create("Views.About")
	require.NoError(t, err)
	assert.Equal(t, "À propos", about.GetIn(frFR, "Title").Value)
	assert.Equal(t, 1, f.Cache().Stats().Tables)

	_, err = f.Create("")
	assert.ErrorIs(t, err, localizer.ErrInvalidArgument)
}

func TestFactory_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f, err := localizer.NewFactory(localizer.FallbackSourceFunc(func(string) (localizer.Fallback, error) {
		return nil, boom
	}))
	require.NoError(t, err)

	_, err = f.Create("Views.Home")
	assert.ErrorIs(t, err, boom)

	_, err = localizer.NewFactory(nil)
	assert.ErrorIs(t, err, localizer.ErrInvalidArgument)
}

func TestFactory_CreateFor(t *testing.T) {
	t.Parallel()

	var seen string
	source := localizer.FallbackSourceFunc(func(path string) (localizer.Fallback, error) {
		seen = path
		return localizer.MapFallback{}, nil
	})
	f, err := localizer.NewFactory(source, localizer.WithApplicationName("github.com/dmitrymomot/resxkit/"))
	require.NoError(t, err)

	r, err := f.CreateFor(&homeView{})
	require.NoError(t, err)
	assert.Equal(t, "pkg.localizer_test.homeView", r.Path())
	assert.Equal(t, "pkg.localizer_test.homeView", seen)

	_, err = f.CreateFor(struct{}{})
	assert.ErrorIs(t, err, localizer.ErrInvalidArgument)
}

func TestTypePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		v       any
		appName string
		want    string
	}{
		{name: "full package path", v: homeView{}, want: "github.com.dmitrymomot.resxkit.pkg.localizer_test.homeView"},
		{name: "trimmed prefix", v: homeView{}, appName: "github.com/dmitrymomot/resxkit/pkg", want: "localizer_test.homeView"},
		{name: "app package itself", v: homeView{}, appName: "github.com/dmitrymomot/resxkit/pkg/localizer_test", want: "homeView"},
		{name: "pointer", v: &homeView{}, appName: "github.com/dmitrymomot/resxkit", want: "pkg.localizer_test.homeView"},
		{name: "nil", v: nil, want: ""},
		{name: "unnamed", v: []int{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, localizer.TypePath(tt.v, tt.appName))
		})
	}
}

func TestNewFactoryFromConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeOverride(t, filepath.Join(root, "Views", "Home.fr-FR.resx"), map[string]string{"Title": "override"})

	source := localizer.FallbackSourceFunc(func(string) (localizer.Fallback, error) {
		return localizer.MapFallback{"fr-FR": {"Title": "compiled"}}, nil
	})

	t.Run("files enabled", func(t *testing.T) {
		t.Parallel()

		f, err := localizer.NewFactoryFromConfig(localizer.Config{
			ResourcesPath: root, Extension: ".resx", FilesEnabled: true, ResolverCacheSize: 4,
		}, source)
		require.NoError(t, err)
		t.Cleanup(f.Close)

		r, err := f.Create("Views.Home")
		require.NoError(t, err)
		assert.Equal(t, "override", r.GetIn(frFR, "Title").Value)
	})

	t.Run("files disabled", func(t *testing.T) {
		t.Parallel()

		f, err := localizer.NewFactoryFromConfig(localizer.Config{ResourcesPath: root}, source)
		require.NoError(t, err)
		t.Cleanup(f.Close)

		r, err := f.Create("Views.Home")
		require.NoError(t, err)
		assert.Equal(t, "compiled", r.GetIn(frFR, "Title").Value)
	})
}
