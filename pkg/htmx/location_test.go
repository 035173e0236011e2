package htmx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hxfields/pkg/htmx"
)

func htmxRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(htmx.HeaderHXRequest.String(), "true")
	return req
}

func TestLocation(t *testing.T) {
	t.Parallel()

	t.Run("HTMX request sets HX-Location header", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.Location(rec, htmxRequest(http.MethodPost, "/examples/hx-location"), "/examples/hx-location-b")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/examples/hx-location-b", rec.Header().Get("HX-Location"))
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("non-HTMX request uses standard redirect", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		htmx.Location(rec, req, "/dashboard")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		assert.Empty(t, rec.Header().Get("HX-Location"))
	})

	t.Run("keeps query and fragment", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.Location(rec, htmxRequest(http.MethodGet, "/test"), "/search?q=a#top")

		assert.Equal(t, "/search?q=a#top", rec.Header().Get("HX-Location"))
	})
}

func TestLocationTarget(t *testing.T) {
	t.Parallel()

	t.Run("HTMX request sets JSON context", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.LocationTarget(rec, htmxRequest(http.MethodGet, "/test"), "/users", "#user-list")

		var opts htmx.LocationOptions
		require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Location")), &opts))
		assert.Equal(t, "/users", opts.Path)
		assert.Equal(t, "#user-list", opts.Target)
	})

	t.Run("empty target falls back to bare path", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.LocationTarget(rec, htmxRequest(http.MethodGet, "/test"), "/users", "")

		assert.Equal(t, "/users", rec.Header().Get("HX-Location"))
	})

	t.Run("non-HTMX request uses standard redirect", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.LocationTarget(rec, httptest.NewRequest(http.MethodGet, "/test", nil), "/users", "#user-list")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/users", rec.Header().Get("Location"))
	})
}

func TestLocationOptions_Value(t *testing.T) {
	t.Parallel()

	t.Run("path only", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/a", htmx.LocationOptions{Path: "/a"}.Value())
		assert.Equal(t, "/a", htmx.LocationOptions{Path: "/a", Values: map[string]string{}}.Value())
	})

	t.Run("full context", func(t *testing.T) {
		t.Parallel()

		opts := htmx.LocationOptions{
			Path:    "/dashboard",
			Source:  "#btn",
			Event:   "click",
			Handler: "handle",
			Target:  "#main",
			Swap:    htmx.SwapOuterHTML,
			Values:  map[string]string{"id": "1"},
			Headers: map[string]string{"X-Custom": "v"},
			Select:  ".content",
		}

		assert.JSONEq(t, `{
			"path": "/dashboard",
			"source": "#btn",
			"event": "click",
			"handler": "handle",
			"target": "#main",
			"swap": "outerHTML",
			"values": {"id": "1"},
			"headers": {"X-Custom": "v"},
			"select": ".content"
		}`, opts.Value())
	})

	t.Run("omits empty optional fields", func(t *testing.T) {
		t.Parallel()

		opts := htmx.LocationOptions{Path: "/p", Swap: htmx.SwapRaw("innerHTML transition:true")}
		assert.JSONEq(t, `{"path":"/p","swap":"innerHTML transition:true"}`, opts.Value())
	})
}
