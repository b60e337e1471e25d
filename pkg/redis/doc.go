// Package redis connects to the Redis server that carries change notifications
// between processes sharing one resources directory.
//
// Connect retries until the server answers PING; Healthcheck adapts a client to
// the readiness probe of package httpserver:
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	watcher := watch.NewRedisWatcher(client, watch.WithRoot(resourcesPath))
//
// Config is populated from REDIS_* environment variables. Redis is optional;
// Config.Enabled reports whether a URL was given.
package redis
