package watch

import (
	"context"
	"errors"
)

// Multi fires when any of its watchers reports a change.
type Multi []Watcher

// Watch implements Watcher. It returns nil when no inner watcher can arm path.
func (m Multi) Watch(path string) *Subscription {
	var inner []*Subscription
	for _, w := range m {
		if w == nil {
			continue
		}
		if sub := w.Watch(path); sub != nil {
			inner = append(inner, sub)
		}
	}

	switch len(inner) {
	case 0:
		return nil
	case 1:
		return inner[0]
	}

	combined := NewSubscription()
	for _, sub := range inner {
		sub.OnFire(func() { combined.Fire() })
	}
	// Retire the remaining inner subscriptions so their watchers can drop them.
	combined.OnFire(func() {
		for _, sub := range inner {
			sub.Fire()
		}
	})
	return combined
}

// Notifiers fans a change notification out to several notifiers.
type Notifiers []Notifier

// Notify implements Notifier. Every notifier is called; errors are joined.
func (n Notifiers) Notify(ctx context.Context, path string) error {
	var errs []error
	for _, notifier := range n {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
