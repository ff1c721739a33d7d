package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers
	"strconv"
	"time"

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Body is the fixed response body returned for every request.
const Body = "OK\n"

// OKHandler answers every request with Body after a fixed delay.  It holds
// no mutable state, so one value is shared by all connections.
type OKHandler struct {
	delay time.Duration
}

// NewOKHandler returns a handler that waits delay before responding.
func NewOKHandler(delay time.Duration) *OKHandler {
	return &OKHandler{delay: delay}
}

// Delay reports the configured per-request latency.
func (h *OKHandler) Delay() time.Duration { return h.delay }

// Serve sleeps for the configured delay and then writes 200 with Body.
// The sleep only holds this request's goroutine; the listener keeps
// accepting.  The method and path are ignored.
func (h *OKHandler) Serve(c echo.Context) error {
	time.Sleep(h.delay)
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(Body)))
	return c.String(http.StatusOK, Body)
}
