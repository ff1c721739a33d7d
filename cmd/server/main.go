package main // Entry point package

import (
	"github.com/iliyamo/okserver/internal/config"  // Internal config loader
	"github.com/iliyamo/okserver/internal/handler" // Fixed-response handler
	"github.com/iliyamo/okserver/internal/logger"  // Stdout logger
	"github.com/iliyamo/okserver/internal/server"  // HTTP listener
)

func main() {
	cfg := config.Load()           // Load environment config
	lg := logger.New(cfg.LogLevel) // Plain-text logger on stdout
	h := handler.NewOKHandler(cfg.ResponseDelay)
	srv := server.New(cfg, h, lg) // Listener owned by main

	if err := srv.Listen(); err != nil { // Bind first so the port is known before announcing
		lg.Fatal(err) // Log and exit 1
	}
	lg.Printf("Demo listening on %s (env=%s)", srv.URL(), cfg.Env) // Single startup line, printed at any log level

	if err := srv.Serve(); err != nil { // Blocks until the process is killed
		lg.Fatal(err)
	}
}
