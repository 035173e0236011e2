// Package middlewares provides the request middleware used by the demo server.
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID or X-Correlation-ID, or generates
// a UUID, and echoes it in the X-Request-ID response header. Pair it with
// RequestIDExtractor so every log record made with the request context
// carries request_id:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor())
//	app := internal.New(
//	    internal.WithLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.RequestLogger(), middlewares.Recover()),
//	)
//
// # Recover
//
// Recover converts a panic into a *PanicError, which the ErrorHandler answers
// like any other error.
//
// # Request logging
//
// RequestLogger records method, path, status and duration for each request.
// For HTMX requests the record also has an "htmx" group with the boosted
// flag, target and trigger.
package middlewares
