package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/okserver/internal/handler" // import the fixed-response handler
)

// RegisterRoutes maps every method on every path to the OK handler.  The
// server behaves like a single root context: "/" and anything beneath it
// get the same response.
func RegisterRoutes(e *echo.Echo, h *handler.OKHandler) {
	// "/*" alone leaves the bare root to Echo's param matching, so register
	// both to be explicit.
	e.Any("/", h.Serve)
	e.Any("/*", h.Serve)
	// Any only covers Echo's known methods; anything else (PURGE, LINK, ...)
	// falls through to the not-found route and would otherwise get a 405.
	e.RouteNotFound("/*", h.Serve)
}
