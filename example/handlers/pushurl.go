package handlers

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/hxfields/example/views"
	"github.com/dmitrymomot/hxfields/internal"
	"github.com/dmitrymomot/hxfields/pkg/htmx"
)

const pushURLPath = "/examples/hx-push-url"

// stepField reads the requested step from the posted form, falling back to the query.
var stepField = internal.NewExtractor(internal.FromForm("step"), internal.FromQuery("step"))

// PushURL lets the server decide whether a step lands in the browser history.
type PushURL struct{}

func NewPushURL() *PushURL { return &PushURL{} }

func (h *PushURL) Routes(r internal.Router) {
	r.GET(pushURLPath, h.show)
	r.POST(pushURLPath, h.next, requireHTMX)
}

func (h *PushURL) show(c internal.Context) error {
	n := internal.QueryDefault(c, "step", 1)
	if n < 1 {
		n = 1
	}
	return c.Render(http.StatusOK, views.PushURLPage(n))
}

func (h *PushURL) next(c internal.Context) error {
	raw, _ := stepField.Extract(c)
	n := step(raw)

	push := htmx.PushURLTo(pushURLPath + "?step=" + strconv.Itoa(n))
	if c.Form("push") == "false" {
		push = htmx.PushURLFalse
	}
	return c.Render(http.StatusOK, views.PushURLStep(n), htmx.WithPushURL(push))
}

// step parses a positive step number, defaulting to 1.
func step(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
