package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrymomot/hxfields/internal"
	"github.com/dmitrymomot/hxfields/middlewares"
	"github.com/dmitrymomot/hxfields/pkg/logger"
)

const (
	sentryFlushTimeout = 2 * time.Second
	shutdownTimeout    = 10 * time.Second
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv))
}

func run(args []string, getenv func(string) string) int {
	cfg, err := LoadConfig(args, getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %+v\n", err)
		return 1
	}

	log := logger.NewWithSentry(cfg.Logger(), cfg.Sentry, middlewares.RequestIDExtractor())
	defer logger.Flush(sentryFlushTimeout)

	app := newApp(log, time.Now)
	if err := app.Run(cfg.Addr(), internal.ShutdownTimeout(shutdownTimeout)); err != nil {
		log.Error("server failed", "error", err)
		return 1
	}
	return 0
}
