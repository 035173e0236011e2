package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/hxfields/internal"
)

// RequestLogger logs one record per request after the handler returns.
// HTMX requests also carry the decoded HX-Boosted, HX-Target and HX-Trigger values.
func RequestLogger() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			r := c.Request()
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", c.ResponseWriter().Status()),
				slog.Duration("duration", time.Since(start)),
			}

			if hx := c.HTMX(); hx.IsHTMX() {
				group := []any{slog.Bool("boosted", hx.Boosted())}
				if v, ok := hx.Target(); ok {
					group = append(group, slog.String("target", v))
				}
				if v, ok := hx.Trigger(); ok {
					group = append(group, slog.String("trigger", v))
				}
				attrs = append(attrs, slog.Group("htmx", group...))
			}

			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			// Handler errors are rendered before the record is written, so the status carries them.
			if err != nil || c.ResponseWriter().Status() >= http.StatusBadRequest {
				c.LogWarn("request", attrs...)
			} else {
				c.LogInfo("request", attrs...)
			}
			return err
		}
	}
}
