package localizer

import (
	"errors"
	"log/slog"
	"reflect"
	"strings"

	"github.com/dmitrymomot/resxkit/pkg/cache"
	"github.com/dmitrymomot/resxkit/pkg/logger"
)

// Factory creates resolvers that share one Cache, one watcher and one set of options.
// Resolvers are kept per logical path in a bounded LRU.
type Factory struct {
	source    FallbackSource
	cache     *Cache
	ownsCache bool
	opts      []Option
	appName   string
	resolvers *cache.LRUCache[string, *Resolver]
	logger    *slog.Logger
}

// NewFactory returns a Factory that takes fallbacks from source.
func NewFactory(source FallbackSource, opts ...Option) (*Factory, error) {
	if source == nil {
		return nil, errors.Join(ErrInvalidArgument, errors.New("fallback source is required"))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	f := &Factory{
		source:    source,
		cache:     o.cache,
		opts:      opts,
		appName:   o.appName,
		resolvers: cache.NewLRUCache[string, *Resolver](o.resolverCache),
		logger:    o.logger.With(logger.Component("localizer")),
	}
	if f.cache == nil {
		f.cache = NewCache(o.cacheOpts...)
		f.ownsCache = true
	}
	return f, nil
}

// Cache returns the cache shared by the factory's resolvers.
func (f *Factory) Cache() *Cache { return f.cache }

// Create returns the resolver for a dotted logical path such as "Views.Home.Index".
func (f *Factory) Create(path string) (*Resolver, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.Join(ErrInvalidArgument, errors.New("resource path is required"))
	}
	if r, ok := f.resolvers.Get(path); ok {
		return r, nil
	}

	fb, err := f.source.Fallback(path)
	if err != nil {
		return nil, err
	}
	r, err := New(path, fb, f.cache, f.opts...)
	if err != nil {
		return nil, err
	}

	r, _ = f.resolvers.GetOrAdd(path, r)
	return r, nil
}

// CreateFor returns the resolver for the Go type of v. The logical path is the type's
// package path followed by its name, with the application name prefix removed and
// slashes turned into dots: "github.com/acme/shop/views/home".Index becomes
// "views.home.Index" for application name "github.com/acme/shop".
func (f *Factory) CreateFor(v any) (*Resolver, error) {
	path := TypePath(v, f.appName)
	if path == "" {
		return nil, errors.Join(ErrInvalidArgument, errors.New("cannot derive resource path from value"))
	}
	return f.Create(path)
}

// Close releases resources held by a cache the factory created.
func (f *Factory) Close() {
	if f.ownsCache {
		f.cache.Close()
	}
}

// TypePath derives a dotted logical path from the type of v.
// Pointer types resolve to their element type; unnamed types yield "".
func TypePath(v any, appName string) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return ""
	}

	pkg := t.PkgPath()
	if appName != "" {
		if pkg == appName {
			pkg = ""
		} else {
			pkg = strings.TrimPrefix(pkg, appName+"/")
		}
	}
	if pkg == "" {
		return t.Name()
	}
	return strings.ReplaceAll(pkg, "/", ".") + "." + t.Name()
}
