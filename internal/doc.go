// Package internal is the small web layer the demo server runs on.
//
// It wraps chi with handler functions that return errors, a request Context
// that knows how to read HTMX request headers and write HTMX response headers,
// and a run loop with graceful shutdown.
//
// # Application
//
//	app := internal.New(
//	    internal.WithLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    internal.WithHandlers(handlers.NewLocation(), handlers.NewTrigger()),
//	    internal.WithHealthChecks(),
//	)
//	if err := app.Run("127.0.0.1:8080"); err != nil {
//	    os.Exit(1)
//	}
//
// # Handlers
//
// Handlers declare their routes and receive dependencies through constructors:
//
//	type Trigger struct{}
//
//	func (h *Trigger) Routes(r internal.Router) {
//	    r.GET("/examples/hx-trigger", h.show)
//	    r.POST("/examples/hx-trigger", h.fire)
//	}
//
// # HTMX responses
//
// A request carrying "HX-Request: true" gets status 200 whatever the handler
// asks for, because HTMX does not swap other responses. The handler's status
// stays readable through ResponseWriter().Status() for logging.
//
// Response headers can be set from an ordered httpfields.Fields:
//
//	c.SetFields(httpfields.New(htmx.HXRetarget("#timestamp"), htmx.HXReswap(htmx.SwapOuterHTML)))
//
// # Errors
//
// A handler error goes to the ErrorHandler unless a response was already
// written. HTTPError carries the status code:
//
//	return internal.ErrBadRequest("missing HX-Request header")
package internal
