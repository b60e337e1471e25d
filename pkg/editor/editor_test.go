package editor_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/editor"
	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/resx"
	"github.com/dmitrymomot/resxkit/pkg/watch"
)

func newEditor(t *testing.T, opts ...editor.Option) (*editor.Editor, string) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Views", "Home.resx"), baseResx)
	writeFile(t, filepath.Join(root, "Shared.resx"), `<root><data name="ok"><value>OK</value></data></root>`)

	e, err := editor.New(root, opts...)
	require.NoError(t, err)
	return e, root
}

func inCulture(name string) context.Context {
	return i18n.WithCulture(context.Background(), i18n.MustParse(name))
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := editor.New("  ")
	assert.ErrorIs(t, err, editor.ErrInvalidArgument)
}

func TestEditor_Paths(t *testing.T) {
	t.Parallel()

	e, root := newEditor(t)
	root, err := filepath.Abs(root)
	require.NoError(t, err)

	base, override, err := e.Paths("Views.Home", i18n.MustParse("fr-fr"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Views", "Home.resx"), base)
	assert.Equal(t, filepath.Join(root, "Views", "Home.fr-FR.resx"), override)

	for _, id := range []string{"", "../etc/passwd", "Views/Home", "Views..Home", ".Home", "Home.", `Views\Home`} {
		_, _, err := e.Paths(id, i18n.Invariant)
		assert.ErrorIs(t, err, editor.ErrInvalidPath, "id %q", id)
	}
}

func TestEditor_Load(t *testing.T) {
	t.Parallel()

	t.Run("base values", func(t *testing.T) {
		t.Parallel()

		e, _ := newEditor(t)
		entries, err := e.Load(inCulture("de"), "Views.Home")
		require.NoError(t, err)
		assert.Equal(t, []editor.Entry{
			{Name: "greeting", OldValue: "Hello", NewValue: "Hello"},
			{Name: "farewell", OldValue: "Bye", NewValue: "Bye"},
		}, entries)
	})

	t.Run("saved overrides replace base values", func(t *testing.T) {
		t.Parallel()

		e, root := newEditor(t)
		writeFile(t, filepath.Join(root, "Views", "Home.fr.resx"),
			`<root><data name="only"><value>Seul</value></data><data name="greeting"><value>Salut</value></data></root>`)

		entries, err := e.Load(inCulture("fr"), "Views.Home")
		require.NoError(t, err)
		assert.Equal(t, []editor.Entry{
			{Name: "greeting", OldValue: "Salut", NewValue: "Salut"},
			{Name: "farewell", OldValue: "Bye", NewValue: "Bye"},
			{Name: "only", OldValue: "Seul", NewValue: "Seul"},
		}, entries)
	})

	t.Run("unreadable override falls back to base", func(t *testing.T) {
		t.Parallel()

		e, root := newEditor(t)
		writeFile(t, filepath.Join(root, "Views", "Home.fr.resx"), "<root><data")

		entries, err := e.Load(inCulture("fr"), "Views.Home")
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("missing base", func(t *testing.T) {
		t.Parallel()

		e, _ := newEditor(t)
		_, err := e.Load(inCulture("fr"), "Views.Missing")
		assert.ErrorIs(t, err, editor.ErrBaseNotFound)
	})
}

func TestEditor_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes override and notifies", func(t *testing.T) {
		t.Parallel()

		notifier := watch.NewManual()
		e, root := newEditor(t, editor.WithNotifier(notifier))
		override := filepath.Join(root, "Views", "Home.fr-FR.resx")
		abs, err := filepath.Abs(override)
		require.NoError(t, err)

		sub := notifier.Watch(abs)
		require.NotNil(t, sub)

		saved, err := e.Save(inCulture("fr-FR"), "Views.Home", []editor.Entry{
			{Name: "greeting", OldValue: "Hello", NewValue: "Bonjour"},
		})
		require.NoError(t, err)
		assert.Equal(t, []editor.Entry{{Name: "greeting", OldValue: "Bonjour", NewValue: "Bonjour"}}, saved)
		assert.True(t, sub.Fired())

		doc, err := resx.ReadFile(override)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"greeting": "Bonjour"}, doc.Table())
	})

	t.Run("unchanged save does not notify", func(t *testing.T) {
		t.Parallel()

		notifier := watch.NewManual()
		e, root := newEditor(t, editor.WithNotifier(notifier))
		abs, err := filepath.Abs(filepath.Join(root, "Views", "Home.de.resx"))
		require.NoError(t, err)
		sub := notifier.Watch(abs)

		_, err = e.Save(inCulture("de"), "Views.Home", []editor.Entry{
			{Name: "greeting", OldValue: "Hello", NewValue: "Hello"},
		})
		require.NoError(t, err)
		assert.False(t, sub.Fired())
		assert.NoFileExists(t, abs)
	})

	t.Run("invariant culture is rejected", func(t *testing.T) {
		t.Parallel()

		e, root := newEditor(t)
		_, err := e.Save(context.Background(), "Views.Home", []editor.Entry{
			{Name: "greeting", OldValue: "Hello", NewValue: "Hi"},
		})
		assert.ErrorIs(t, err, editor.ErrInvalidArgument)
		assert.Equal(t, baseResx, readFile(t, filepath.Join(root, "Views", "Home.resx")))
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		e, _ := newEditor(t)
		_, err := e.Save(inCulture("fr"), "../Views.Home", nil)
		assert.ErrorIs(t, err, editor.ErrInvalidPath)
	})
}

func TestEditor_List(t *testing.T) {
	t.Parallel()

	e, root := newEditor(t)
	writeFile(t, filepath.Join(root, "Views", "Home.fr-FR.resx"), baseResx)
	writeFile(t, filepath.Join(root, "Views", "Nav.resx"), baseResx)
	writeFile(t, filepath.Join(root, "Views", "Shared", "nav.resx"), baseResx)
	writeFile(t, filepath.Join(root, "Views", "Shared", "nav.fr.resx"), baseResx)
	writeFile(t, filepath.Join(root, "notes.txt"), "ignored")

	ids, err := e.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Shared", "Views.Home", "Views.Nav", "Views.Shared.nav"}, ids)
}
