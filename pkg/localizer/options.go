package localizer

import (
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/resxkit/pkg/watch"
)

const (
	// DefaultExtension is the override file extension.
	DefaultExtension = "resx"
	// DefaultResolverCacheSize bounds the number of resolvers a Factory keeps.
	DefaultResolverCacheSize = 256
)

type options struct {
	logger       *slog.Logger
	watcher      watch.Watcher
	root         string
	ext          string
	filesEnabled bool

	// factory only
	cache         *Cache
	cacheOpts     []CacheOption
	appName       string
	resolverCache int
}

func defaultOptions() *options {
	return &options{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		watcher:       watch.Noop{},
		ext:           DefaultExtension,
		filesEnabled:  true,
		resolverCache: DefaultResolverCacheSize,
	}
}

// Option configures a Resolver or a Factory.
type Option func(*options)

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWatcher sets the watcher used to invalidate loaded override files.
// Without one, loaded files are kept until the cache is invalidated explicitly.
func WithWatcher(w watch.Watcher) Option {
	return func(o *options) {
		if w != nil {
			o.watcher = w
		}
	}
}

// WithResourcesPath sets the directory override files live in.
func WithResourcesPath(root string) Option {
	return func(o *options) { o.root = root }
}

// WithExtension sets the override file extension, "resx" by default.
func WithExtension(ext string) Option {
	return func(o *options) {
		if ext = strings.TrimPrefix(ext, "."); ext != "" {
			o.ext = ext
		}
	}
}

// WithFilesDisabled skips override files and resolves from the fallback only.
func WithFilesDisabled() Option {
	return func(o *options) { o.filesEnabled = false }
}

// WithCache makes a Factory share an existing cache.
func WithCache(c *Cache) Option {
	return func(o *options) { o.cache = c }
}

// WithCacheOptions configures the cache a Factory creates for itself.
func WithCacheOptions(opts ...CacheOption) Option {
	return func(o *options) { o.cacheOpts = append(o.cacheOpts, opts...) }
}

// WithApplicationName sets the prefix trimmed from Go type paths by Factory.CreateFor.
func WithApplicationName(name string) Option {
	return func(o *options) { o.appName = strings.TrimSuffix(name, "/") }
}

// WithResolverCacheSize bounds the number of resolvers a Factory keeps.
func WithResolverCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.resolverCache = n
		}
	}
}
