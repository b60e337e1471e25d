package watch

import (
	"context"
	"path/filepath"
)

// Manual is a Watcher fired by explicit Trigger calls.
// It also implements Notifier, which makes it the in-process link between
// a writer of override files and the caches reading them.
type Manual struct {
	reg *registry
}

// NewManual returns an empty Manual watcher.
func NewManual() *Manual {
	return &Manual{reg: newRegistry()}
}

// Watch implements Watcher.
func (m *Manual) Watch(path string) *Subscription {
	return m.reg.add(absPath(path))
}

// Trigger fires every subscription armed for path and returns how many fired.
func (m *Manual) Trigger(path string) int {
	return m.reg.fire(absPath(path))
}

// Notify implements Notifier.
func (m *Manual) Notify(_ context.Context, path string) error {
	m.Trigger(path)
	return nil
}

// Pending returns the number of armed subscriptions.
func (m *Manual) Pending() int { return m.reg.len() }

// Noop never arms subscriptions.
type Noop struct{}

// Watch implements Watcher and always returns nil.
func (Noop) Watch(string) *Subscription { return nil }

// absPath keys subscriptions by absolute path so relative and absolute
// spellings of one file meet.
func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
