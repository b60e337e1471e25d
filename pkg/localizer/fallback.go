package localizer

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
)

// Fallback is the compiled resource source consulted when no override file supplies a name.
type Fallback interface {
	// Lookup resolves name for c, walking c's parent chain.
	// It returns ErrNotFound when no level has the name and ErrMissingManifest
	// when no level of the chain has a resource set at all.
	Lookup(name string, c i18n.Culture) (string, error)

	// Names lists the names available for c. With exactMatchOnly the parent chain
	// is not consulted. It returns ErrMissingManifest when c has no resource set.
	Names(c i18n.Culture, exactMatchOnly bool) ([]string, error)
}

// FallbackSource hands out the Fallback for a logical resource path.
type FallbackSource interface {
	Fallback(path string) (Fallback, error)
}

// FallbackSourceFunc adapts a function to FallbackSource.
type FallbackSourceFunc func(path string) (Fallback, error)

// Fallback implements FallbackSource.
func (f FallbackSourceFunc) Fallback(path string) (Fallback, error) { return f(path) }

// MapFallback is an in-memory Fallback keyed by culture name, then resource name.
// The invariant culture uses the empty key.
type MapFallback map[string]map[string]string

// Lookup implements Fallback.
func (m MapFallback) Lookup(name string, c i18n.Culture) (string, error) {
	hasAny := false
	for _, level := range c.Chain() {
		set, ok := m.set(level)
		if !ok {
			continue
		}
		hasAny = true
		if v, ok := set[name]; ok {
			return v, nil
		}
	}
	if !hasAny {
		return "", ErrMissingManifest
	}
	return "", ErrNotFound
}

// Names implements Fallback.
func (m MapFallback) Names(c i18n.Culture, exactMatchOnly bool) ([]string, error) {
	chain := c.Chain()
	if exactMatchOnly {
		chain = chain[:1]
	}

	seen := make(map[string]struct{})
	hasAny := false
	for _, level := range chain {
		set, ok := m.set(level)
		if !ok {
			continue
		}
		hasAny = true
		for name := range set {
			seen[name] = struct{}{}
		}
	}
	if !hasAny {
		return nil, ErrMissingManifest
	}
	return slices.Sorted(maps.Keys(seen)), nil
}

func (m MapFallback) set(c i18n.Culture) (map[string]string, bool) {
	if set, ok := m[c.Name()]; ok {
		return set, true
	}
	for key, set := range m {
		if strings.EqualFold(key, c.Name()) {
			return set, true
		}
	}
	return nil, false
}

// isMissing reports whether err is one of the fallback's not-found outcomes.
func isMissing(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrMissingManifest)
}
