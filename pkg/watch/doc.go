// Package watch provides one-shot change notifications for files.
//
// A Subscription starts armed and transitions to fired exactly once. Callbacks
// registered with OnFire run on the goroutine that fired the subscription (or
// immediately when registering after the fact) and must not block.
//
// Watchers hand out subscriptions per path:
//
//   - FSWatcher uses fsnotify on the parent directory, so a subscription for a file that
//     does not exist yet fires when the file is created.
//   - RedisWatcher fires subscriptions when a path is published on a pub/sub channel; use
//     it when replicas share a network volume that produces no local file events.
//   - Manual fires on explicit Trigger calls; Noop never arms anything.
//   - Multi combines several watchers into one subscription.
//
// A nil *Subscription means the watcher cannot deliver callbacks for that path. Callers
// treat it as "never invalidated" rather than as an error.
//
// Subscriptions are never re-armed. Callers that want further notifications call Watch
// again, typically the next time they load the file.
package watch
