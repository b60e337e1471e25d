package cmd_test

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/pkg/resx"
)

// The commands share the process environment and the config cache, so these
// tests do not run in parallel.

func TestGet(t *testing.T) {
	catalogDir, resourcesDir := fixture(t)
	base := []string{"get", "--catalog", catalogDir, "--resources", resourcesDir}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "override file wins", args: []string{"Views.Home", "greeting", "-c", "fr-FR"}, want: "Salut"},
		{name: "catalog culture", args: []string{"Views.Home", "greeting", "-c", "fr"}, want: "Bonjour"},
		{name: "parent culture", args: []string{"Views.Home", "welcome", "-c", "fr-FR", "Ann"}, want: "Welcome, Ann!"},
		{name: "invariant", args: []string{"Views.Home", "greeting"}, want: "Hello"},
		{name: "missing name echoes", args: []string{"Views.Home", "nope", "-c", "fr"}, want: "nope"},
		{name: "unknown resource echoes", args: []string{"Views.Other", "greeting"}, want: "greeting"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append(base, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}

	t.Run("strict", func(t *testing.T) {
		_, err := execute(t, append(base, "Views.Home", "nope", "--strict")...)
		assert.Error(t, err)
	})

	t.Run("bad culture", func(t *testing.T) {
		_, err := execute(t, append(base, "Views.Home", "greeting", "-c", "not a culture!")...)
		assert.Error(t, err)
	})
}

func TestDump(t *testing.T) {
	catalogDir, resourcesDir := fixture(t)
	base := []string{"dump", "--catalog", catalogDir, "--resources", resourcesDir, "Views.Home"}

	out, err := execute(t, append(base, "-c", "fr-FR")...)
	require.NoError(t, err)
	assert.Equal(t, "greeting=Salut\n", out)

	out, err = execute(t, append(base, "-c", "fr-FR", "--parents")...)
	require.NoError(t, err)
	assert.Equal(t, "greeting=Salut\nwelcome=Welcome, {0}!\n", out)

	out, err = execute(t, append(base, "-c", "fr", "--parents", "-o", "json")...)
	require.NoError(t, err)
	var values map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	assert.Equal(t, map[string]string{"greeting": "Bonjour", "welcome": "Welcome, {0}!"}, values)

	_, err = execute(t, "dump", "--catalog", catalogDir, "--resources", resourcesDir, "Views.Other", "--parents")
	assert.Error(t, err)

	_, err = execute(t, append(base, "-o", "xml")...)
	assert.Error(t, err)
}

func TestEdit(t *testing.T) {
	catalogDir, resourcesDir := fixture(t)

	out, err := execute(t, "edit", "--resources", resourcesDir, "-c", "de", "Views.Home", "greeting=Hallo", "welcome=Willkommen, {0}!")
	require.NoError(t, err)
	override := filepath.Join(resourcesDir, "Views", "Home.de.resx")
	assert.Contains(t, out, "2 value(s) merged into ")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), override), out)

	doc, err := resx.ReadFile(override)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greeting": "Hallo", "welcome": "Willkommen, {0}!"}, doc.Table())

	out, err = execute(t, "get", "--catalog", catalogDir, "--resources", resourcesDir, "Views.Home", "welcome", "-c", "de", "Jo")
	require.NoError(t, err)
	assert.Equal(t, "Willkommen, Jo!\n", out)

	t.Run("culture is required", func(t *testing.T) {
		_, err := execute(t, "edit", "--resources", resourcesDir, "Views.Home", "greeting=Hi")
		assert.Error(t, err)
	})

	t.Run("malformed pair", func(t *testing.T) {
		_, err := execute(t, "edit", "--resources", resourcesDir, "-c", "de", "Views.Home", "greeting")
		assert.Error(t, err)
	})

	t.Run("unknown resource", func(t *testing.T) {
		_, err := execute(t, "edit", "--resources", resourcesDir, "-c", "de", "Views.Missing", "greeting=Hi")
		assert.Error(t, err)
	})
}

func TestList(t *testing.T) {
	_, resourcesDir := fixture(t)
	write(t, filepath.Join(resourcesDir, "Shared.resx"), homeBase)

	out, err := execute(t, "list", "--resources", resourcesDir)
	require.NoError(t, err)
	assert.Equal(t, "Shared\nViews.Home\n", out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "resxd dev\n"), out)
}
