// Package main is the entry point for the e-BudgetMo API server.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/e-budgetmo/backend/config"
	"github.com/e-budgetmo/backend/internal/application/adapter"
	"github.com/e-budgetmo/backend/internal/infra/dependency"
	"github.com/e-budgetmo/backend/internal/integration/storage"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting e-BudgetMo API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"storage_driver", cfg.Storage.Driver,
	)

	// Open the durable key-value store
	kv, closer, err := openStorage(cfg)
	if err != nil {
		slog.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	storageHealth := func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return kv.Ping(ctx) == nil
	}

	// Wire dependencies
	injector := dependency.NewInjector(cfg, kv, storageHealth)

	// Hydrate stores before accepting traffic so the first read sees
	// the restored state rather than the zero state.
	hydrateCtx, cancelHydrate := context.WithTimeout(context.Background(), 10*time.Second)
	injector.LedgerStore.Hydrate(hydrateCtx)
	injector.GoalStore.Hydrate(hydrateCtx)
	cancelHydrate()

	// Setup HTTP server
	engine := injector.Router.Setup(cfg.Server.Environment)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	// Drain pending fire-and-forget saves once mutations have stopped.
	injector.LedgerStore.Close()
	injector.GoalStore.Close()

	slog.Info("Server stopped")
}

// openStorage selects the key-value backend from configuration.
func openStorage(cfg *config.Config) (adapter.KeyValueStore, io.Closer, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		pg, err := storage.NewPostgresStore(&cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg, nil
	case "redis":
		rd, err := storage.NewRedisStore(&cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		return rd, rd, nil
	default:
		sq, err := storage.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sq, sq, nil
	}
}
