package internal

// Handler declares routes on a router.
//
// Example:
//
//	type ReswapHandler struct {
//	    now func() time.Time
//	}
//
//	func (h *ReswapHandler) Routes(r internal.Router) {
//	    r.GET("/examples/hx-reswap", h.show)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc handles a request. A non-nil error is passed to the ErrorHandler
// unless a response was already written.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func RequireHTMX(next internal.HandlerFunc) internal.HandlerFunc {
//	    return func(c internal.Context) error {
//	        if !c.IsHTMX() {
//	            return internal.ErrBadRequest("htmx request required")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
