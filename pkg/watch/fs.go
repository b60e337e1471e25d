package watch

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FSWatcher delivers file change notifications through fsnotify.
// Parent directories are watched rather than files so that a subscription for a
// missing file fires once the file is created, and atomic rename-over writes are seen.
type FSWatcher struct {
	watcher *fsnotify.Watcher
	reg     *registry
	logger  *slog.Logger

	mu     sync.Mutex
	dirs   map[string]struct{}
	closed bool
	done   chan struct{}
}

// Option configures watchers.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	channel string
	root    string
}

// WithLogger sets the logger used for watcher diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		channel: DefaultChannel,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewFSWatcher starts an fsnotify event loop. Call Close to release it.
func NewFSWatcher(opts ...Option) (*FSWatcher, error) {
	o := applyOptions(opts)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Join(ErrFailedToCreateWatcher, err)
	}

	w := &FSWatcher{
		watcher: fw,
		reg:     newRegistry(),
		logger:  o.logger,
		dirs:    make(map[string]struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch implements Watcher. It returns nil when the parent directory cannot be watched,
// for example because it does not exist.
func (w *FSWatcher) Watch(path string) *Subscription {
	abs, err := filepath.Abs(path)
	if err != nil {
		w.logger.Debug("cannot resolve watch path", "path", path, "error", err)
		return nil
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	if _, ok := w.dirs[dir]; !ok {
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Debug("cannot watch directory", "dir", dir, "error", err)
			return nil
		}
		w.dirs[dir] = struct{}{}
	}
	return w.reg.add(abs)
}

// Close stops the event loop. Armed subscriptions never fire afterwards.
func (w *FSWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *FSWatcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			if n := w.reg.fire(filepath.Clean(ev.Name)); n > 0 {
				w.logger.Debug("file changed", "path", ev.Name, "op", ev.Op.String(), "subscriptions", n)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}
