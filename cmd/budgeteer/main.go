package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rickeychiu/budgeteer/internal/config"
	"github.com/rickeychiu/budgeteer/internal/engine"
	apphttp "github.com/rickeychiu/budgeteer/internal/http"
	applog "github.com/rickeychiu/budgeteer/internal/log"
	"github.com/rickeychiu/budgeteer/internal/profile"
	"github.com/rickeychiu/budgeteer/internal/source"
	"github.com/rickeychiu/budgeteer/internal/source/memory"
	"github.com/rickeychiu/budgeteer/internal/source/nessie"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.ComponentApp, slog.LevelInfo)
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	// Choose record source backend (default: memory fixtures).
	var src source.RecordSource
	switch cfg.RecordBackend {
	case "nessie":
		src = nessie.New(cfg.NessieBaseURL, cfg.NessieAPIKey, cfg.UpstreamTimeout)
		logger.Info("Initialized Nessie record source", "backend", cfg.RecordBackend, "base_url", cfg.NessieBaseURL)
	default:
		src = memory.NewSeeded()
		logger.Info("Initialized memory record source", "backend", cfg.RecordBackend)
	}

	profiles, err := profile.NewStore(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize profile store", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer profiles.Close()

	srv := apphttp.NewServer(":"+cfg.Port, engine.New(src), profiles)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting budgeteer server", "port", cfg.Port, "backend", cfg.RecordBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
