package localizer

import (
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/watch"
)

// cacheKey identifies either an override file (name empty) or a single
// name that the fallback reported as having no manifest.
// Path and culture are stored lower-cased so lookups are case-insensitive.
type cacheKey struct {
	path    string
	culture string
	ext     string
	name    string
}

func fileKey(path string, c i18n.Culture, ext string) cacheKey {
	return cacheKey{
		path:    strings.ToLower(path),
		culture: strings.ToLower(c.Name()),
		ext:     strings.ToLower(ext),
	}
}

func nameKey(path string, c i18n.Culture, name string) cacheKey {
	return cacheKey{
		path:    strings.ToLower(path),
		culture: strings.ToLower(c.Name()),
		name:    name,
	}
}

func (k cacheKey) String() string {
	if k.name != "" {
		return "name=" + k.name + "&culture=" + k.culture
	}
	return "culture=" + k.path + "." + k.culture + "." + k.ext
}

// CacheStats is a point-in-time view of a Cache.
type CacheStats struct {
	Tables     int // loaded override tables
	Tombstones int // override files confirmed absent
	Negatives  int // names the fallback reported as having no manifest
}

// Cache holds loaded override tables and negative results shared by every
// Resolver built on it. It is safe for concurrent use.
type Cache struct {
	mu       sync.RWMutex
	tables   map[cacheKey]map[string]string
	negative *ttlcache.Cache[cacheKey, struct{}]
	nameTTL  time.Duration
	cleaner  bool
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithNegativeTTL expires name-level negative entries after d.
// File-level tombstones are unaffected; they only go away when the file changes.
// Zero keeps negative entries for the life of the cache.
func WithNegativeTTL(d time.Duration) CacheOption {
	return func(c *Cache) {
		if d > 0 {
			c.nameTTL = d
		}
	}
}

// NewCache returns an empty cache. Call Close when a negative TTL is configured.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		tables:  make(map[cacheKey]map[string]string),
		nameTTL: ttlcache.NoTTL,
		negative: ttlcache.New(
			ttlcache.WithDisableTouchOnHit[cacheKey, struct{}](),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.nameTTL > 0 {
		c.cleaner = true
		go c.negative.Start()
	}
	return c
}

// Close stops the expiry loop started for a negative TTL.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleaner {
		c.cleaner = false
		c.negative.Stop()
	}
}

func (c *Cache) isNegative(key cacheKey) bool {
	return c.negative.Get(key) != nil
}

func (c *Cache) markNameMissing(key cacheKey) {
	c.negative.Set(key, struct{}{}, c.nameTTL)
}

func (c *Cache) table(key cacheKey) (map[string]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tables[key]
	return t, ok
}

// store records the outcome of loading an override file. A nil table records a
// tombstone. The first stored table for a key wins and is returned to later callers.
// When any of subs has already fired, the result is returned without being cached.
func (c *Cache) store(key cacheKey, table map[string]string, subs ...*watch.Subscription) map[string]string {
	c.mu.Lock()
	for _, sub := range subs {
		if sub != nil && sub.Fired() {
			c.mu.Unlock()
			return table
		}
	}
	if table == nil {
		c.negative.Set(key, struct{}{}, ttlcache.NoTTL)
	} else if existing, ok := c.tables[key]; ok {
		table = existing
	} else {
		c.tables[key] = table
	}
	c.mu.Unlock()

	// Registered outside the lock: OnFire runs evict inline when the
	// subscription fired after the check above.
	for _, sub := range subs {
		if sub != nil {
			sub.OnFire(func() { c.evict(key) })
		}
	}
	return table
}

// evict drops the loaded table and the tombstone for an override file.
func (c *Cache) evict(key cacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tables, key)
	c.negative.Delete(key)
}

// Invalidate drops everything cached for a logical path and culture: the loaded
// table, the file tombstone and name-level negative entries.
func (c *Cache) Invalidate(path string, culture i18n.Culture) {
	p, cn := strings.ToLower(path), strings.ToLower(culture.Name())

	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.tables {
		if key.path == p && key.culture == cn {
			delete(c.tables, key)
		}
	}
	for _, key := range c.negative.Keys() {
		if key.path == p && key.culture == cn {
			c.negative.Delete(key)
		}
	}
}

// Purge drops every cached entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.tables)
	c.negative.DeleteAll()
}

// Stats reports the number of cached entries.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := CacheStats{Tables: len(c.tables)}
	for _, key := range c.negative.Keys() {
		if key.name == "" {
			stats.Tombstones++
		} else {
			stats.Negatives++
		}
	}
	return stats
}
