// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until its context is cancelled or the process receives SIGINT or
// SIGTERM, then calls http.Server.Shutdown with the configured deadline and
// runs the functions registered with WithCleanup:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithCleanup(func(context.Context) error { return factory.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthHandler serves liveness ("ALIVE") and readiness ("READY"/"NOT_READY")
// probes.
//
// Start failures are joined with ErrStart and shutdown failures with
// ErrShutdown.
package httpserver
