package internal_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hxfields/internal"
	"github.com/dmitrymomot/hxfields/pkg/htmx"
	"github.com/dmitrymomot/hxfields/pkg/httpfields"
)

type routes func(r internal.Router)

func (fn routes) Routes(r internal.Router) { fn(r) }

type ctxKey struct{}

func serve(t *testing.T, app *internal.App, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestApp_Routing(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/items/{id}", func(c internal.Context) error {
			return c.String(http.StatusOK, "item "+c.Param("id"))
		})
		r.POST("/items", func(c internal.Context) error {
			return c.String(http.StatusCreated, c.Form("name"))
		})
		r.Route("/admin", func(r internal.Router) {
			r.DELETE("/items/{id}", func(c internal.Context) error {
				return c.NoContent(http.StatusNoContent)
			})
		})
	})))

	t.Run("path parameter", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/items/42", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "item 42", rec.Body.String())
	})

	t.Run("form value", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("name=lamp"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := serve(t, app, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "lamp", rec.Body.String())
	})

	t.Run("nested route", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, app, httptest.NewRequest(http.MethodDelete, "/admin/items/1", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown path", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestApp_Middleware(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}
	setValue := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			c.Set(ctxKey{}, "from middleware")
			return next(c)
		}
	}

	app := internal.New(
		internal.WithMiddleware(tag("global-1"), tag("global-2"), setValue),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				order = append(order, "handler")
				return c.String(http.StatusOK, internal.ContextValue[string](c, ctxKey{}))
			}, tag("route-1"), tag("route-2"))
		})),
	)

	rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "from middleware", rec.Body.String())
	assert.Equal(t, []string{"global-1", "global-2", "route-1", "route-2", "handler"}, order)
}

func TestApp_Errors(t *testing.T) {
	t.Parallel()

	failing := routes(func(r internal.Router) {
		r.GET("/bad", func(c internal.Context) error {
			return internal.ErrBadRequest("missing HX-Request header")
		})
		r.GET("/boom", func(c internal.Context) error {
			return errors.New("boom")
		})
		r.GET("/late", func(c internal.Context) error {
			_ = c.String(http.StatusOK, "done")
			return errors.New("too late")
		})
	})

	t.Run("default handler uses the HTTPError status", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithHandlers(failing))
		rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/bad", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "missing HX-Request header", rec.Body.String())
	})

	t.Run("default handler hides plain errors", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithHandlers(failing))
		rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", rec.Body.String())
	})

	t.Run("htmx requests get 200", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithHandlers(failing))
		req := httptest.NewRequest(http.MethodGet, "/bad", nil)
		req.Header.Set(htmx.HeaderHXRequest.String(), "true")

		rec := serve(t, app, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("custom handler", func(t *testing.T) {
		t.Parallel()

		app := internal.New(
			internal.WithHandlers(failing),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				if he := internal.AsHTTPError(err); he != nil {
					return c.NoContent(he.Code)
				}
				return c.NoContent(http.StatusTeapot)
			}),
		)

		rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/bad", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Body.String())

		rec = serve(t, app, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("skipped after the response is written", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithHandlers(failing))
		rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/late", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "done", rec.Body.String())
	})

	t.Run("custom not found", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithNotFoundHandler(func(c internal.Context) error {
			return c.String(http.StatusNotFound, "nothing at "+c.Request().URL.Path)
		}))
		rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "nothing at /nowhere", rec.Body.String())
	})
}

func TestContext_HTMX(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/fields", func(c internal.Context) error {
			target, _ := c.HTMX().Target()
			c.SetFields(httpfields.New(
				htmx.HXRetarget("#"+target),
				htmx.HXReswap(htmx.SwapOuterHTML),
			))
			return c.NoContent(http.StatusOK)
		})
		r.GET("/partial", func(c internal.Context) error {
			return c.RenderPartial(http.StatusOK, text("full"), text("partial"),
				htmx.WithTrigger("loaded"))
		})
	})))

	t.Run("decodes request and writes fields", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/fields", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Target", "timestamp")

		rec := serve(t, app, req)
		assert.Equal(t, "#timestamp", rec.Header().Get("HX-Retarget"))
		assert.Equal(t, "outerHTML", rec.Header().Get("HX-Reswap"))
	})

	t.Run("partial for htmx", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/partial", nil)
		req.Header.Set("HX-Request", "true")

		rec := serve(t, app, req)
		assert.Equal(t, "partial", rec.Body.String())
		assert.Equal(t, "loaded", rec.Header().Get("HX-Trigger"))
	})

	t.Run("full page otherwise", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/partial", nil))
		assert.Equal(t, "full", rec.Body.String())
		assert.Empty(t, rec.Header().Get("HX-Trigger"))
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	})
}

func TestApp_Health(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHealthChecks(
		internal.WithReadinessCheck("views", func(context.Context) error {
			return errors.New("not loaded")
		}),
	))

	rec := serve(t, app, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, app, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var stopped bool
		app := internal.New()
		err := app.Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.StartupHook(func(context.Context) error {
				cancel()
				return nil
			}),
			internal.ShutdownHook(func(context.Context) error {
				stopped = true
				return nil
			}),
		)

		require.NoError(t, err)
		assert.True(t, stopped)
	})

	t.Run("startup hook error aborts", func(t *testing.T) {
		t.Parallel()

		hookErr := errors.New("views not loaded")
		app := internal.New()
		err := app.Run("127.0.0.1:0", internal.StartupHook(func(context.Context) error {
			return hookErr
		}))

		assert.ErrorIs(t, err, hookErr)
	})

	t.Run("shutdown hook errors are joined", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		hookErr := errors.New("flush failed")
		app := internal.New()
		err := app.Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.ShutdownHook(func(context.Context) error { return hookErr }),
		)

		assert.ErrorIs(t, err, hookErr)
	})
}

type text string

func (s text) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(s))
	return err
}
