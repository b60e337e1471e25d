package cmd_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resxkit/cmd/resxd/cmd"
	"github.com/dmitrymomot/resxkit/pkg/config"
)

const homeBase = `<?xml version="1.0" encoding="utf-8"?>
<root>
  <data name="greeting" xml:space="preserve"><value>Hello</value></data>
  <data name="welcome" xml:space="preserve"><value>Welcome, {0}!</value></data>
</root>
`

// fixture lays out a base catalog and a resources directory:
//
//	catalog/Views/Home.resx        greeting=Hello welcome=Welcome, {0}!
//	catalog/Views/Home.fr.resx     greeting=Bonjour
//	resources/Views/Home.resx      copy of the base, edited against
//	resources/Views/Home.fr-FR.resx greeting=Salut
func fixture(t *testing.T) (catalogDir, resourcesDir string) {
	t.Helper()
	base := t.TempDir()
	catalogDir = filepath.Join(base, "catalog")
	resourcesDir = filepath.Join(base, "resources")

	write(t, filepath.Join(catalogDir, "Views", "Home.resx"), homeBase)
	write(t, filepath.Join(catalogDir, "Views", "Home.fr.resx"),
		`<root><data name="greeting"><value>Bonjour</value></data></root>`)
	write(t, filepath.Join(resourcesDir, "Views", "Home.resx"), homeBase)
	write(t, filepath.Join(resourcesDir, "Views", "Home.fr-FR.resx"),
		`<root><data name="greeting"><value>Salut</value></data></root>`)
	return catalogDir, resourcesDir
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// execute runs resxd with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.Reset()
	t.Setenv("REDIS_URL", "")
	t.Setenv("LOCALIZER_NEGATIVE_TTL", "0s")

	var out bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}
