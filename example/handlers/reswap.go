package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/hxfields/example/views"
	"github.com/dmitrymomot/hxfields/internal"
	"github.com/dmitrymomot/hxfields/pkg/htmx"
)

// Reswap replaces the timestamp input chosen by the server.
type Reswap struct {
	now func() time.Time
}

// NewReswap uses now as the clock; nil means time.Now.
func NewReswap(now func() time.Time) *Reswap {
	if now == nil {
		now = time.Now
	}
	return &Reswap{now: now}
}

func (h *Reswap) Routes(r internal.Router) {
	r.GET("/examples/hx-reswap", h.show)
	r.GET("/examples/swap-http", h.show)
}

func (h *Reswap) show(c internal.Context) error {
	ts := Timestamp(h.now())
	return c.RenderPartial(http.StatusOK,
		views.ReswapPage(ts),
		views.TimestampInput(ts),
		htmx.WithRetarget("#timestamp"),
		htmx.WithReswap(htmx.SwapOuterHTML),
	)
}

// Timestamp formats t as seconds since the Unix epoch with at least one decimal.
func Timestamp(t time.Time) string {
	s := strconv.FormatFloat(float64(t.UnixNano())/1e9, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
