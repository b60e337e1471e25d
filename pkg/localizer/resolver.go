package localizer

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/logger"
	"github.com/dmitrymomot/resxkit/pkg/watch"
)

// LocalizedString is the outcome of a lookup. When Found is false, Value echoes Name.
type LocalizedString struct {
	Name  string
	Value string
	Found bool
}

func (s LocalizedString) String() string { return s.Value }

// Resolver resolves names for one logical resource path. Lookups prefer the override
// file for the culture, then the compiled fallback. Resolvers are safe for concurrent use.
type Resolver struct {
	path         string
	root         string
	ext          string
	filesEnabled bool
	fallback     Fallback
	cache        *Cache
	watcher      watch.Watcher
	logger       *slog.Logger

	culture i18n.Culture
	bound   bool
}

// New returns a Resolver for path. A nil cache gives the resolver a private one.
func New(path string, fb Fallback, cache *Cache, opts ...Option) (*Resolver, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.Join(ErrInvalidArgument, errors.New("resource path is required"))
	}
	if fb == nil {
		return nil, errors.Join(ErrInvalidArgument, errors.New("fallback is required"))
	}
	if cache == nil {
		cache = NewCache()
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Resolver{
		path:         path,
		root:         o.root,
		ext:          o.ext,
		filesEnabled: o.filesEnabled,
		fallback:     fb,
		cache:        cache,
		watcher:      o.watcher,
		logger:       o.logger.With(logger.Component("localizer"), logger.Resource(path)),
	}, nil
}

// Path returns the logical resource path.
func (r *Resolver) Path() string { return r.path }

// WithCulture returns a resolver bound to c. It shares caches with r.
func (r *Resolver) WithCulture(c i18n.Culture) *Resolver {
	clone := *r
	clone.culture = c
	clone.bound = true
	return &clone
}

// WithAmbientCulture returns a resolver that takes its culture from the context.
func (r *Resolver) WithAmbientCulture() *Resolver {
	clone := *r
	clone.culture = i18n.Invariant
	clone.bound = false
	return &clone
}

// Culture returns the culture used for a lookup made with ctx.
func (r *Resolver) Culture(ctx context.Context) i18n.Culture {
	if r.bound {
		return r.culture
	}
	return i18n.FromContext(ctx)
}

// Get resolves name in the effective culture.
func (r *Resolver) Get(ctx context.Context, name string) LocalizedString {
	return r.GetIn(r.Culture(ctx), name)
}

// GetIn resolves name in c.
func (r *Resolver) GetIn(c i18n.Culture, name string) LocalizedString {
	if strings.TrimSpace(name) == "" {
		return LocalizedString{Name: name, Value: name}
	}
	if value, ok := r.lookup(name, c); ok {
		return LocalizedString{Name: name, Value: value, Found: true}
	}
	return LocalizedString{Name: name, Value: name}
}

// Format resolves name and substitutes args into the positional items of the template.
// Found reports whether the template was resolved.
func (r *Resolver) Format(ctx context.Context, name string, args ...any) LocalizedString {
	return r.FormatIn(r.Culture(ctx), name, args...)
}

// FormatIn is Format for an explicit culture.
func (r *Resolver) FormatIn(c i18n.Culture, name string, args ...any) LocalizedString {
	s := r.GetIn(c, name)
	s.Value = format(s.Value, args)
	return s
}

// GetAll returns every name visible in the effective culture together with its value.
// Names are resolved lazily while iterating.
func (r *Resolver) GetAll(ctx context.Context, includeParentCultures bool) (iter.Seq[LocalizedString], error) {
	return r.GetAllIn(r.Culture(ctx), includeParentCultures)
}

// GetAllIn is GetAll for an explicit culture. With includeParentCultures it fails
// with ErrMissingManifest when no culture in the chain has any names.
func (r *Resolver) GetAllIn(c i18n.Culture, includeParentCultures bool) (iter.Seq[LocalizedString], error) {
	var (
		names []string
		err   error
	)
	if includeParentCultures {
		names, err = r.hierarchyNames(c)
	} else {
		names = r.cultureNames(c)
	}
	if err != nil {
		return nil, err
	}

	return func(yield func(LocalizedString) bool) {
		for _, name := range names {
			if !yield(r.GetIn(c, name)) {
				return
			}
		}
	}, nil
}

// lookup walks negative cache, override table and fallback in that order.
func (r *Resolver) lookup(name string, c i18n.Culture) (string, bool) {
	nk := nameKey(r.path, c, name)
	if r.cache.isNegative(nk) {
		return "", false
	}

	if table := r.overrideTable(c); table != nil {
		if v, ok := table[name]; ok {
			return v, true
		}
	}

	value, err := r.fallback.Lookup(name, c)
	switch {
	case err == nil:
		return value, true
	case errors.Is(err, ErrMissingManifest):
		r.cache.markNameMissing(nk)
		r.logger.Debug("no manifest for resource", "name", name, logger.Culture(c.Name()))
	case !errors.Is(err, ErrNotFound):
		r.logger.Warn("fallback lookup failed", "name", name, logger.Culture(c.Name()), logger.Error(err))
	}
	return "", false
}

// overrideTable returns the loaded override table for c, loading it on first use.
// It returns nil when override files are disabled or absent.
func (r *Resolver) overrideTable(c i18n.Culture) map[string]string {
	if !r.filesEnabled {
		return nil
	}
	fk := fileKey(r.path, c, r.ext)
	if r.cache.isNegative(fk) {
		return nil
	}
	if table, ok := r.cache.table(fk); ok {
		return table
	}
	return r.loadTable(c, fk)
}

// cultureNames is the union of the override table names and the fallback names
// for c alone. A culture without a fallback manifest contributes no names.
func (r *Resolver) cultureNames(c i18n.Culture) []string {
	set := mapset.NewThreadUnsafeSet[string]()
	for name := range r.overrideTable(c) {
		set.Add(name)
	}

	names, err := r.fallback.Names(c, true)
	if err != nil && !errors.Is(err, ErrMissingManifest) {
		r.logger.Warn("cannot list fallback names", logger.Culture(c.Name()), logger.Error(err))
	}
	set.Append(names...)

	return sortedNames(set)
}

// hierarchyNames is the union of the fallback names of c and each of its ancestors.
func (r *Resolver) hierarchyNames(c i18n.Culture) ([]string, error) {
	set := mapset.NewThreadUnsafeSet[string]()
	hasAny := false
	for _, level := range c.Chain() {
		names, err := r.fallback.Names(level, true)
		if err != nil {
			if !errors.Is(err, ErrMissingManifest) {
				r.logger.Warn("cannot list fallback names", logger.Culture(level.Name()), logger.Error(err))
			}
			continue
		}
		hasAny = true
		set.Append(names...)
	}
	if !hasAny {
		return nil, ErrMissingManifest
	}
	return sortedNames(set), nil
}

func sortedNames(set mapset.Set[string]) []string {
	names := set.ToSlice()
	slices.Sort(names)
	return names
}
