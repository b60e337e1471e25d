// Package cache provides a generic, bounded LRU map.
//
// The localizer factory keeps one resolver per logical resource path in an
// LRUCache so that applications creating resolvers for many types do not grow
// memory without limit:
//
//	resolvers := cache.NewLRUCache[string, *localizer.Resolver](256)
//	r, _ := resolvers.GetOrAdd(path, candidate) // first stored value wins
//
// GetOrAdd resolves races between goroutines building the same value: the loser
// receives the winner's value and discards its own.
//
// An eviction callback can release resources held by dropped values:
//
//	c.SetEvictCallback(func(key string, f *os.File) { _ = f.Close() })
//
// All methods are safe for concurrent use.
package cache
