// Package main runs the conversion API: it wires configuration, logging,
// services, handlers, and middleware together and serves HTTP until the
// process receives SIGINT or SIGTERM.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/oknozor/conversion-api/internal/config"
	"github.com/oknozor/conversion-api/internal/handler"
	"github.com/oknozor/conversion-api/internal/logger"
	"github.com/oknozor/conversion-api/internal/middleware"
	"github.com/oknozor/conversion-api/internal/router"
	"github.com/oknozor/conversion-api/internal/server"
	"github.com/oknozor/conversion-api/internal/service"
)

// shutdownTimeout bounds how long in-flight requests and telemetry flushing
// may hold up process exit.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize telemetry: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg, loggerService)

	srv := server.New(cfg, &log, loggerService)

	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	srv.SetupHTTPServer(router.New(srv, handlers, middlewares))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	loggerService.Shutdown(shutdownTimeout)

	log.Info().Msg("server stopped")
}
