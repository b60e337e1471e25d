// Package requestid tags every HTTP request with a correlation id.
//
// The middleware reuses a well-formed X-Request-ID header (letters, digits, '-'
// and '_', at most 128 characters) or generates a UUID, echoes it in the
// response and stores it in the request context. LoggerExtractor plugs the id
// into loggers built by package logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
