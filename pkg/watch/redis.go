package watch

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel used by RedisWatcher.
const DefaultChannel = "resxkit:changes"

// WithChannel overrides the pub/sub channel.
func WithChannel(channel string) Option {
	return func(o *options) {
		if channel != "" {
			o.channel = channel
		}
	}
}

// WithRoot makes published paths relative to root, so replicas that mount the same
// files at different locations still agree on keys.
func WithRoot(root string) Option {
	return func(o *options) {
		if root != "" {
			o.root = root
		}
	}
}

// RedisWatcher fires subscriptions for paths published on a Redis channel.
// It implements both Watcher and Notifier; Run must be running to receive.
type RedisWatcher struct {
	client  redis.UniversalClient
	channel string
	root    string
	reg     *registry
	logger  *slog.Logger
}

// NewRedisWatcher returns a watcher bound to client.
func NewRedisWatcher(client redis.UniversalClient, opts ...Option) *RedisWatcher {
	o := applyOptions(opts)
	root := o.root
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}
	return &RedisWatcher{
		client:  client,
		channel: o.channel,
		root:    root,
		reg:     newRegistry(),
		logger:  o.logger,
	}
}

// Watch implements Watcher.
func (w *RedisWatcher) Watch(path string) *Subscription {
	return w.reg.add(w.key(path))
}

// Notify publishes path to every replica, this one included.
func (w *RedisWatcher) Notify(ctx context.Context, path string) error {
	if err := w.client.Publish(ctx, w.channel, w.key(path)).Err(); err != nil {
		return errors.Join(ErrFailedToPublish, err)
	}
	return nil
}

// Run receives notifications until ctx is cancelled.
func (w *RedisWatcher) Run(ctx context.Context) error {
	pubsub := w.client.Subscribe(ctx, w.channel)
	defer func() { _ = pubsub.Close() }()

	if _, err := pubsub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return errors.Join(ErrFailedToSubscribe, err)
	}
	w.logger.InfoContext(ctx, "listening for change notifications", "channel", w.channel)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			w.dispatch(msg.Payload)
		}
	}
}

func (w *RedisWatcher) dispatch(key string) int {
	n := w.reg.fire(key)
	if n > 0 {
		w.logger.Debug("change notification received", "key", key, "subscriptions", n)
	}
	return n
}

// key normalises a path to the form published on the channel.
func (w *RedisWatcher) key(path string) string {
	clean := filepath.Clean(path)
	if w.root == "" {
		return filepath.ToSlash(clean)
	}
	abs, err := filepath.Abs(clean)
	if err != nil {
		return filepath.ToSlash(clean)
	}
	rel, err := filepath.Rel(w.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}
