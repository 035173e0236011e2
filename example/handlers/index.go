package handlers

import (
	"net/http"

	"github.com/dmitrymomot/hxfields/example/views"
	"github.com/dmitrymomot/hxfields/internal"
)

// Index serves the landing page.
type Index struct{}

func NewIndex() *Index { return &Index{} }

func (h *Index) Routes(r internal.Router) {
	r.GET("/", h.show)
}

func (h *Index) show(c internal.Context) error {
	return c.Render(http.StatusOK, views.Index())
}
