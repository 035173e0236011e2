package handlers

import (
	"net/http"

	"github.com/dmitrymomot/hxfields/example/views"
	"github.com/dmitrymomot/hxfields/internal"
	"github.com/dmitrymomot/hxfields/pkg/htmx"
)

const (
	locationPath  = "/examples/hx-location"
	locationBPath = "/examples/hx-location-b"
)

// Location bounces between two pages with HX-Location.
type Location struct{}

func NewLocation() *Location { return &Location{} }

func (h *Location) Routes(r internal.Router) {
	r.GET(locationPath, h.page(views.LocationPage()))
	r.POST(locationPath, h.navigate(locationBPath), requireHTMX)
	r.GET(locationBPath, h.page(views.LocationBPage()))
	r.POST(locationBPath, h.navigate(locationPath), requireHTMX)
}

func (h *Location) page(page internal.Component) internal.HandlerFunc {
	return func(c internal.Context) error {
		return c.Render(http.StatusOK, page)
	}
}

func (h *Location) navigate(to string) internal.HandlerFunc {
	return func(c internal.Context) error {
		htmx.Location(c.Response(), c.Request(), to)
		return nil
	}
}
