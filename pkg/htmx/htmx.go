package htmx

import (
	"net/http"

	"github.com/dmitrymomot/hxfields/pkg/httpfields"
)

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return FromRequest(r).IsHTMX()
}

// setField replaces any existing value of f.Name on h.
func setField(h http.Header, f httpfields.Field) {
	h.Set(f.Name.String(), f.Value)
}
