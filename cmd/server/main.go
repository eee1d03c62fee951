package main

import (
	"chat-shell/auth"
	"chat-shell/fixtures"
	"chat-shell/internal"
	"chat-shell/observability"
	"chat-shell/repositories"
	"chat-shell/services"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the shell and serves it until SIGINT/SIGTERM.
// Returning instead of exiting lets the deferred cleanups run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Sample data, seeded once relative to startup
	directory, err := repositories.OpenDirectory(log)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("Closing directory...")
		_ = directory.Close()
	}()
	if err = directory.LoadDataset(fixtures.Seed(time.Now())); err != nil {
		return err
	}

	// 3. Services
	tokens, err := auth.NewTokenIssuer(config.SessionSecret, config.SessionDuration)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	svc := services.NewShellService(log, directory, repositories.NewMemorySessionRepository(config.SessionDuration), time.Now)
	web := internal.NewWebServer(log, svc, tokens, observability.NewMonitoringManager(log), directory)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. HTTP server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{
		Addr:         address,
		Handler:      web.Handler(),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting chat shell", "address", "http://"+address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}
