package internal_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/hxfields/internal"
)

func TestExtractor(t *testing.T) {
	t.Parallel()

	ext := internal.NewExtractor(
		internal.FromHeader("X-Request-ID"),
		internal.FromQuery("rid"),
	)

	var got string
	var found bool
	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			got, found = ext.Extract(c)
			return c.NoContent(http.StatusOK)
		})
	})))

	tests := []struct {
		name      string
		target    string
		header    map[string]string
		want      string
		wantFound bool
	}{
		{"header wins", "/?rid=q", map[string]string{"X-Request-ID": "h"}, "h", true},
		{"falls back to query", "/?rid=q", nil, "q", true},
		{"empty header falls through", "/?rid=q", map[string]string{"X-Request-ID": ""}, "q", true},
		{"nothing", "/", nil, "", false},
	}

	for _, tt := range tests {
		// Subtests share the handler's result variables.
		req := httptest.NewRequest(http.MethodGet, tt.target, nil)
		for k, v := range tt.header {
			req.Header.Set(k, v)
		}
		serve(t, app, req)

		assert.Equal(t, tt.want, got, tt.name)
		assert.Equal(t, tt.wantFound, found, tt.name)
	}
}

func TestExtractorForm(t *testing.T) {
	t.Parallel()

	ext := internal.NewExtractor(internal.FromForm("step"), internal.FromQuery("step"))

	var got string
	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.POST("/", func(c internal.Context) error {
			got, _ = ext.Extract(c)
			return c.NoContent(http.StatusOK)
		})
	})))

	req := httptest.NewRequest(http.MethodPost, "/?step=9", strings.NewReader("step=4"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	serve(t, app, req)
	assert.Equal(t, "4", got)

	req = httptest.NewRequest(http.MethodPost, "/?step=9", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	serve(t, app, req)
	assert.Equal(t, "9", got)
}

func TestQueryDefault(t *testing.T) {
	t.Parallel()

	var step int
	var flag bool
	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			step = internal.QueryDefault(c, "step", 1)
			flag = internal.Query[bool](c, "flag")
			return c.NoContent(http.StatusOK)
		})
	})))

	serve(t, app, httptest.NewRequest(http.MethodGet, "/?step=3&flag=true", nil))
	assert.Equal(t, 3, step)
	assert.True(t, flag)

	serve(t, app, httptest.NewRequest(http.MethodGet, "/?step=false", nil))
	assert.Equal(t, 1, step)
	assert.False(t, flag)
}

func TestQueryNamedType(t *testing.T) {
	t.Parallel()

	type step int
	type mode string

	var gotStep step
	var gotMode mode
	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			gotStep = internal.QueryDefault(c, "step", step(1))
			gotMode = internal.Query[mode](c, "mode")
			return c.NoContent(http.StatusOK)
		})
	})))

	serve(t, app, httptest.NewRequest(http.MethodGet, "/?step=5&mode=fast", nil))
	assert.Equal(t, step(5), gotStep)
	assert.Equal(t, mode("fast"), gotMode)

	serve(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, step(1), gotStep)
	assert.Equal(t, mode(""), gotMode)
}
