// Rowboat fill-engine server — provides the HTTP ingress API, manages
// queue workers, and drives the per-cell fill pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rowboat-dev/rowboat/pkg/api"
	"github.com/rowboat-dev/rowboat/pkg/cleanup"
	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/database"
	"github.com/rowboat-dev/rowboat/pkg/engine"
	"github.com/rowboat-dev/rowboat/pkg/operator"
	"github.com/rowboat-dev/rowboat/pkg/queue"
	"github.com/rowboat-dev/rowboat/pkg/services"
	"github.com/rowboat-dev/rowboat/pkg/validator"
	"github.com/rowboat-dev/rowboat/pkg/version"
	"github.com/rowboat-dev/rowboat/pkg/wrapper"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the replica identifier for multi-replica
// queue coordination. Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting rowboat",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

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

	// 3. One-time startup orphan cleanup: events this pod left in
	// processing before a restart.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Tool service client and the operator registry.
	// Note: grpc.NewClient uses lazy dialing; actual connection happens
	// on the first invocation.
	toolClient, err := operator.NewToolClient(cfg.Operators)
	if err != nil {
		slog.Error("Failed to initialize tool client",
			"addr", cfg.Operators.ToolServiceAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := toolClient.Close(); err != nil {
			slog.Error("Error closing tool client", "error", err)
		}
	}()

	registry := operator.NewRegistry(
		operator.NewGoogleSearch(toolClient, cfg.Wrapper.BlockedURLHosts),
		operator.NewURLContext(toolClient),
		operator.NewStructuredOutput(toolClient),
		operator.NewFunctionCalling(toolClient),
		operator.NewSimilarityExpansion(toolClient),
		operator.NewAcademicSearch(toolClient, cfg.Wrapper.BlockedURLHosts),
	)
	slog.Info("Operator registry initialized",
		"operators", len(registry.Types()),
		"tool_service_addr", cfg.Operators.ToolServiceAddr)

	// 5. Domain services, validator, and the column-aware wrapper
	sheetService := services.NewSheetService(dbClient.Client)
	ingestService := services.NewIngestService(dbClient.Client)
	statusService := services.NewStatusService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	cellValidator := validator.New(cfg.Validator)
	cellWrapper := wrapper.New(dbClient.Client, cellValidator, cfg.Wrapper)
	slog.Info("Services initialized")

	// 6. Worker pool with the fill-pipeline executor
	executor := engine.NewExecutor(
		sheetService, statusService, cellWrapper, registry,
		queue.NewStore(dbClient.Client), cfg.Dispatcher)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Dispatcher, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Background audit retention sweeps
	retention := cleanup.NewService(cfg.Retention, dbClient.Client)
	retention.Start(ctx)
	defer retention.Stop()

	// 8. HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, sheetService, ingestService,
		statusService, eventService, workerPool)
	addr := ":" + httpPort
	httpServer.Start(addr)
	slog.Info("HTTP server listening", "addr", addr)

	slog.Info("Rowboat started successfully",
		"pod_id", podID,
		"workers", cfg.Dispatcher.Parallelism)

	// 9. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 10. Graceful shutdown: drain workers first so in-flight events
	// reach a terminal status, then stop the HTTP server.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Dispatcher.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete events will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
