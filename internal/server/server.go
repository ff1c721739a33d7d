// Package server owns the HTTP listener: it binds the socket, serves the
// fixed response on every connection and stops on request.  Connections
// are dispatched by net/http, one goroutine each.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/iliyamo/okserver/internal/config"
	"github.com/iliyamo/okserver/internal/handler"
	"github.com/iliyamo/okserver/internal/router"
)

// ErrBind is returned by Listen when the address cannot be acquired
// (already in use, permission denied).  The OS error is wrapped as well.
var ErrBind = errors.New("bind failure")

// ErrNotListening is returned by Serve when Listen has not succeeded.
var ErrNotListening = errors.New("listener not bound")

// Listener is the process's HTTP server.  The zero value is not usable;
// build one with New.
type Listener struct {
	cfg config.Config
	e   *echo.Echo
	ln  net.Listener
}

// New builds a Listener for cfg.  Nothing is bound until Listen.  A nil
// logger keeps Echo's default.
func New(cfg config.Config, h *handler.OKHandler, lg *log.Logger) *Listener {
	e := echo.New()
	e.HideBanner = true // the entry point prints its own startup line
	e.HidePort = true
	if lg != nil {
		e.Logger = lg
	}
	router.RegisterRoutes(e, h)
	return &Listener{cfg: cfg, e: e}
}

// Listen binds the configured TCP address.
func (l *Listener) Listen() error {
	addr := l.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: listen on %s: %w", ErrBind, addr, err)
	}
	l.ln = ln
	l.e.Listener = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (l *Listener) Addr() net.Addr {
	if l.ln == nil {
		return nil
	}
	return l.ln.Addr()
}

// URL returns a browsable URL for the bound address, used in the startup
// line.  A wildcard bind is reported as localhost.
func (l *Listener) URL() string {
	host, port := "localhost", l.cfg.Port
	if tcp, ok := l.Addr().(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	return "http://" + net.JoinHostPort(host, port)
}

// Serve accepts connections until Stop is called.  It returns nil after a
// Stop and the serve error otherwise.
func (l *Listener) Serve() error {
	if l.ln == nil {
		return ErrNotListening
	}
	if err := l.e.Start(l.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop closes the listener and waits for in-flight requests until ctx is
// done.  It is safe to call before Serve.
func (l *Listener) Stop(ctx context.Context) error {
	err := l.e.Shutdown(ctx)
	if l.ln != nil {
		_ = l.ln.Close() // Shutdown only closes listeners Serve has picked up
	}
	return err
}
