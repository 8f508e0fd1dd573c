package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"astrophage/logging"
	"astrophage/server"
)

// shutdownTimeout bounds how long in-flight requests may take on exit
const shutdownTimeout = 5 * time.Second

func main() {
	configDir := flag.String("config", ".", "Directory containing "+server.ConfigFile)
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astrophage: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)
	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func run(cfg server.Config, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("public", cfg.PublicDir).Msg("server starting")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("listen on %s: %w", cfg.Addr, err)
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case sig := <-stop:
		logger.Info().Stringer("signal", sig).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
