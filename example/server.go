package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/hxfields/example/handlers"
	"github.com/dmitrymomot/hxfields/example/views"
	"github.com/dmitrymomot/hxfields/internal"
	"github.com/dmitrymomot/hxfields/middlewares"
)

// newApp wires the example handlers. now is the clock for the reswap example.
func newApp(log *slog.Logger, now func() time.Time) *internal.App {
	return internal.New(
		internal.WithLogger(log),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Recover(),
		),
		internal.WithErrorHandler(handleError),
		internal.WithHandlers(
			handlers.NewIndex(),
			handlers.NewLocation(),
			handlers.NewReswap(now),
			handlers.NewTrigger(),
			handlers.NewPrompt(),
			handlers.NewPushURL(),
		),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("catalog", views.CatalogCheck()),
		),
	)
}

// handleError answers HTTP errors with an empty body and their status.
// Anything else is logged and becomes a 500.
func handleError(c internal.Context, err error) error {
	if he := internal.AsHTTPError(err); he != nil {
		if he.Code >= http.StatusInternalServerError {
			c.LogError("request failed", slog.Any("error", err))
		}
		return c.NoContent(he.Code)
	}
	c.LogError("request failed", slog.Any("error", err))
	return c.NoContent(http.StatusInternalServerError)
}
