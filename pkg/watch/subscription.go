package watch

import (
	"context"
	"sync"
	"sync/atomic"
)

// Watcher arms subscriptions for paths.
// Watch returns nil when change callbacks are not available for path.
type Watcher interface {
	Watch(path string) *Subscription
}

// Notifier announces that the file at path changed.
type Notifier interface {
	Notify(ctx context.Context, path string) error
}

// Subscription is a one-shot change notification.
type Subscription struct {
	fired     atomic.Bool
	mu        sync.Mutex
	callbacks []func()
	done      chan struct{}
}

// NewSubscription returns an armed subscription.
func NewSubscription() *Subscription {
	return &Subscription{done: make(chan struct{})}
}

// Fire transitions the subscription to fired and runs its callbacks.
// Only the first call has any effect; it reports whether this call fired.
func (s *Subscription) Fire() bool {
	if !s.fired.CompareAndSwap(false, true) {
		return false
	}

	s.mu.Lock()
	callbacks := s.callbacks
	s.callbacks = nil
	close(s.done)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
	return true
}

// Fired reports whether the subscription has fired.
func (s *Subscription) Fired() bool { return s.fired.Load() }

// OnFire registers fn to run when the subscription fires.
// fn runs immediately if it already has.
func (s *Subscription) OnFire(fn func()) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	if s.fired.Load() {
		s.mu.Unlock()
		fn()
		return
	}
	s.callbacks = append(s.callbacks, fn)
	s.mu.Unlock()
}

// Done is closed when the subscription fires.
func (s *Subscription) Done() <-chan struct{} { return s.done }
