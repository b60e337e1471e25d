package catalog

import (
	"errors"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/localizer"
	"github.com/dmitrymomot/resxkit/pkg/logger"
)

// resourceSet holds the tables of one logical path, keyed by lower-cased culture name.
// The invariant culture uses the empty key.
type resourceSet struct {
	path   string
	tables map[string]map[string]string
}

// Catalog is the compiled resource tier: every resource file of an fs.FS indexed
// once at construction. It is read-only and safe for concurrent use.
//
// File names follow <path>.<culture>.<ext> or <path>.<ext> for the invariant culture,
// where <path> may use directories or dots: "Views/Home.fr-FR.json" and
// "Views.Home.fr-FR.json" both belong to the logical path "Views.Home".
type Catalog struct {
	sets    map[string]*resourceSet // keyed by lower-cased logical path
	parsers []Parser
	strict  bool
	logger  *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used while indexing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithParsers replaces the default parsers.
func WithParsers(parsers ...Parser) Option {
	return func(c *Catalog) {
		if len(parsers) > 0 {
			c.parsers = parsers
		}
	}
}

// WithStrict makes New fail on files that cannot be parsed instead of skipping them.
func WithStrict() Option {
	return func(c *Catalog) { c.strict = true }
}

// New indexes every supported file below the root of fsys.
func New(fsys fs.FS, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		sets:    make(map[string]*resourceSet),
		parsers: DefaultParsers(),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("catalog"))

	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		return c.index(fsys, name)
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToIndex, err)
	}

	c.logger.Debug("resources indexed", "paths", len(c.sets))
	return c, nil
}

func (c *Catalog) index(fsys fs.FS, name string) error {
	parser, ext := parserFor(c.parsers, name)
	if parser == nil {
		return nil
	}

	logicalPath, culture, ok := splitName(strings.TrimSuffix(name, "."+ext))
	if !ok {
		return nil
	}

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	table, err := parser.Parse(content)
	if err != nil {
		if c.strict {
			return err
		}
		c.logger.Warn("skipping unparsable resource file", logger.Path(name), logger.Error(err))
		return nil
	}

	key := strings.ToLower(logicalPath)
	set, exists := c.sets[key]
	if !exists {
		set = &resourceSet{path: logicalPath, tables: make(map[string]map[string]string)}
		c.sets[key] = set
	}

	// Several files for the same path and culture merge; earlier files win.
	ck := strings.ToLower(culture.Name())
	merged, exists := set.tables[ck]
	if !exists {
		merged = make(map[string]string, len(table))
		set.tables[ck] = merged
	}
	for n, v := range table {
		addFirst(merged, n, v)
	}
	return nil
}

// splitName turns "Views/Home.fr-FR" into ("Views.Home", fr-FR).
func splitName(name string) (string, i18n.Culture, bool) {
	name = strings.ReplaceAll(path.Clean(name), "/", ".")
	if name == "" || name == "." || strings.HasPrefix(name, ".") {
		return "", i18n.Invariant, false
	}
	base, c, _ := i18n.SplitCultureSuffix(name)
	return base, c, true
}

// Paths lists the logical paths in the catalog, sorted.
func (c *Catalog) Paths() []string {
	paths := make([]string, 0, len(c.sets))
	for _, set := range c.sets {
		paths = append(paths, set.path)
	}
	slices.Sort(paths)
	return paths
}

// Has reports whether the catalog holds resources for path.
func (c *Catalog) Has(path string) bool {
	_, ok := c.sets[strings.ToLower(path)]
	return ok
}

// Cultures lists the cultures that have resources for path.
func (c *Catalog) Cultures(path string) []i18n.Culture {
	set, ok := c.sets[strings.ToLower(path)]
	if !ok {
		return nil
	}
	cultures := make([]i18n.Culture, 0, len(set.tables))
	for _, name := range slices.Sorted(maps.Keys(set.tables)) {
		if culture, err := i18n.Parse(name); err == nil {
			cultures = append(cultures, culture)
		}
	}
	return cultures
}

// Fallback implements localizer.FallbackSource. Unknown paths get a fallback that
// reports ErrMissingManifest for every culture.
func (c *Catalog) Fallback(path string) (localizer.Fallback, error) {
	set, ok := c.sets[strings.ToLower(path)]
	if !ok {
		c.logger.Debug("no compiled resources", logger.Resource(path))
		return &fallback{set: &resourceSet{path: path}}, nil
	}
	return &fallback{set: set}, nil
}

// Table returns the resources of path for exactly culture c.
func (c *Catalog) Table(path string, culture i18n.Culture) (map[string]string, error) {
	set, ok := c.sets[strings.ToLower(path)]
	if !ok {
		return nil, ErrUnknownPath
	}
	table, ok := set.tables[strings.ToLower(culture.Name())]
	if !ok {
		return nil, localizer.ErrMissingManifest
	}
	return maps.Clone(table), nil
}

type fallback struct {
	set *resourceSet
}

func (f *fallback) table(c i18n.Culture) (map[string]string, bool) {
	t, ok := f.set.tables[strings.ToLower(c.Name())]
	return t, ok
}

// Lookup walks c's chain down to the invariant culture.
func (f *fallback) Lookup(name string, c i18n.Culture) (string, error) {
	hasAny := false
	for _, level := range c.Chain() {
		table, ok := f.table(level)
		if !ok {
			continue
		}
		hasAny = true
		if v, ok := table[name]; ok {
			return v, nil
		}
	}
	if !hasAny {
		return "", localizer.ErrMissingManifest
	}
	return "", localizer.ErrNotFound
}

func (f *fallback) Names(c i18n.Culture, exactMatchOnly bool) ([]string, error) {
	chain := c.Chain()
	if exactMatchOnly {
		chain = chain[:1]
	}

	names := mapset.NewThreadUnsafeSet[string]()
	hasAny := false
	for _, level := range chain {
		table, ok := f.table(level)
		if !ok {
			continue
		}
		hasAny = true
		for name := range table {
			names.Add(name)
		}
	}
	if !hasAny {
		return nil, localizer.ErrMissingManifest
	}

	out := names.ToSlice()
	slices.Sort(out)
	return out, nil
}
