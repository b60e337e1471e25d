package watch

import "sync"

// registry tracks armed subscriptions per key.
type registry struct {
	mu   sync.Mutex
	subs map[string][]*Subscription
}

func newRegistry() *registry {
	return &registry{subs: make(map[string][]*Subscription)}
}

func (r *registry) add(key string) *Subscription {
	sub := NewSubscription()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Drop subscriptions fired through another path (see Multi).
	live := r.subs[key][:0]
	for _, s := range r.subs[key] {
		if !s.Fired() {
			live = append(live, s)
		}
	}
	r.subs[key] = append(live, sub)
	return sub
}

// fire fires and forgets every subscription for key. It returns how many fired.
func (r *registry) fire(key string) int {
	r.mu.Lock()
	subs := r.subs[key]
	delete(r.subs, key)
	r.mu.Unlock()

	fired := 0
	for _, s := range subs {
		if s.Fire() {
			fired++
		}
	}
	return fired
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, subs := range r.subs {
		n += len(subs)
	}
	return n
}
