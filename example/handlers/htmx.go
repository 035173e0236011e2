// Package handlers serves the HTMX header examples.
package handlers

import (
	"github.com/dmitrymomot/hxfields/internal"
)

// requireHTMX rejects requests that did not come from htmx.
func requireHTMX(next internal.HandlerFunc) internal.HandlerFunc {
	return func(c internal.Context) error {
		if !c.IsHTMX() {
			return internal.ErrBadRequest("missing HX-Request header")
		}
		return next(c)
	}
}
