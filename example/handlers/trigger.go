package handlers

import (
	"net/http"

	"github.com/dmitrymomot/hxfields/example/views"
	"github.com/dmitrymomot/hxfields/internal"
	"github.com/dmitrymomot/hxfields/pkg/htmx"
	"github.com/dmitrymomot/hxfields/pkg/httpfields"
)

// TriggerMessage is the detail sent with the showMessage event.
const TriggerMessage = "This alert was triggered by HX-Trigger"

// Trigger fires a client event from a response header.
type Trigger struct{}

func NewTrigger() *Trigger { return &Trigger{} }

func (h *Trigger) Routes(r internal.Router) {
	r.GET("/examples/hx-trigger", h.show)
	r.POST("/examples/hx-trigger", h.fire, requireHTMX)
}

func (h *Trigger) show(c internal.Context) error {
	return c.Render(http.StatusOK, views.TriggerPage())
}

func (h *Trigger) fire(c internal.Context) error {
	detail, err := htmx.TriggerDetails(map[string]any{"showMessage": TriggerMessage})
	if err != nil {
		return internal.ErrInternal("encode trigger", internal.WithError(err))
	}
	c.SetFields(httpfields.New(htmx.HXTriggerEvent(detail)))
	return c.NoContent(http.StatusOK)
}
