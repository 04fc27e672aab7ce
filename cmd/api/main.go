// Package main is the entry point for the Grove API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/grove/backend/config"
	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/infra/db"
	"github.com/grove/backend/internal/infra/dependency"
	"github.com/grove/backend/internal/integration/persistence"
	"github.com/grove/backend/internal/integration/persistence/model"
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

	slog.Info("Starting Grove API",
		"environment", cfg.Server.Environment,
		"storage_driver", cfg.Storage.Driver,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize the record store
	var repo adapter.RecordRepository
	var storageHealthChecker func() bool

	switch cfg.Storage.Driver {
	case "redis":
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Error("Invalid Redis URL", "error", err)
			os.Exit(1)
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		opts.DB = cfg.Redis.DB
		client := redis.NewClient(opts)
		defer func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()

		repo = persistence.NewRedisRecordRepository(client, cfg.Storage.RecordKey)
		storageHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err() == nil
		}
		slog.Info("Redis record store initialized", "key", cfg.Storage.RecordKey)

	default:
		database, err := db.NewSQLiteConnection(&cfg.Storage)
		if err != nil {
			slog.Error("Failed to open database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		if err := database.AutoMigrate(&model.UserRecordModel{}); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		repo = persistence.NewRecordRepository(database.DB(), cfg.Storage.RecordKey)
		storageHealthChecker = database.HealthCheck
	}

	// Wire use cases and controllers
	injector := dependency.NewInjector(repo, adapter.SystemClock{}, storageHealthChecker)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
