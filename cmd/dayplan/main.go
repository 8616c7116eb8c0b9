// Dayplan server — HTTP API, scheduling reconciler, chat assistant, and
// retention loop over one shared task store.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dayplan/dayplan/pkg/api"
	"github.com/dayplan/dayplan/pkg/chat"
	"github.com/dayplan/dayplan/pkg/cleanup"
	"github.com/dayplan/dayplan/pkg/config"
	"github.com/dayplan/dayplan/pkg/database"
	"github.com/dayplan/dayplan/pkg/llm"
	"github.com/dayplan/dayplan/pkg/planner"
	"github.com/dayplan/dayplan/pkg/reconciler"
	"github.com/dayplan/dayplan/pkg/services"
	"github.com/dayplan/dayplan/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	slog.Info("Starting dayplan",
		"version", version.Full(),
		"host", cfg.Host,
		"port", cfg.Port,
		"model", cfg.Model,
		"scheduler_enabled", cfg.SchedulerEnabled)

	// 2. Database
	dbConfig := database.LoadConfigFromEnv(cfg.DatabaseURL)
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Services
	taskService := services.NewTaskService(dbClient.Client, cfg)
	contextService := services.NewContextService(dbClient.Client)
	settingsService := services.NewSettingsService(dbClient.Client, cfg.Model, cfg.MaxTokens)
	chatMessageService := services.NewChatMessageService(dbClient.Client)
	inferenceService := services.NewInferenceService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Planner over OpenRouter
	model := llm.NewOpenRouterClient(cfg.OpenRouterAPIKey, "")
	plan := planner.NewPlanner(model, settingsService, inferenceService)
	chatOrch := chat.NewOrchestrator(taskService, chatMessageService, contextService, plan)

	// 5. Background loops
	var recon *reconciler.Service
	if cfg.SchedulerEnabled {
		recon = reconciler.NewService(taskService, contextService, plan, planner.ParseISOTime, cfg)
		recon.Start(ctx)
		defer recon.Stop()
	} else {
		slog.Info("Reconciler disabled by configuration")
	}

	retention := cleanup.NewService(cfg, inferenceService, chatMessageService)
	retention.Start(ctx)
	defer retention.Stop()

	// 6. HTTP server
	server := api.NewServer(cfg, dbClient, taskService, contextService,
		settingsService, inferenceService, chatOrch, retention)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", server.Addr())
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: the deferred Stop calls drain the reconciler
	// and retention loops after the HTTP server stops accepting work.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
