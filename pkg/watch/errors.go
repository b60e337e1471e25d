package watch

import "errors"

var (
	ErrFailedToCreateWatcher = errors.New("failed to create file watcher")
	ErrWatcherClosed         = errors.New("watcher is closed")
	ErrFailedToPublish       = errors.New("failed to publish change notification")
	ErrFailedToSubscribe     = errors.New("failed to subscribe to change notifications")
)
