// WEX clearinghouse server — HTTP API, SMS queue workers, background
// scheduler, and the notification outbox in one process.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/warehouse-exchange/wex/pkg/api"
	"github.com/warehouse-exchange/wex/pkg/clearing"
	"github.com/warehouse-exchange/wex/pkg/config"
	"github.com/warehouse-exchange/wex/pkg/database"
	"github.com/warehouse-exchange/wex/pkg/engagement"
	"github.com/warehouse-exchange/wex/pkg/geo"
	"github.com/warehouse-exchange/wex/pkg/llm"
	"github.com/warehouse-exchange/wex/pkg/marketrate"
	"github.com/warehouse-exchange/wex/pkg/notify"
	"github.com/warehouse-exchange/wex/pkg/queue"
	"github.com/warehouse-exchange/wex/pkg/scheduler"
	"github.com/warehouse-exchange/wex/pkg/services"
	"github.com/warehouse-exchange/wex/pkg/sms"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
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

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting WEX",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
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

	// 3. One-time startup orphan cleanup for messages this pod abandoned
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. LLM client. Missing credentials degrade every LLM-backed step to its
	// deterministic fallback rather than blocking startup.
	var llmClient llm.Client
	if ac, err := llm.NewAnthropicClient(cfg.LLM); err != nil {
		slog.Warn("LLM unavailable, running with deterministic fallbacks", "error", err)
	} else {
		llmClient = ac
	}

	// 5. Core services
	geocoder, err := geo.NewCachingGeocoder(&geo.CentroidGeocoder{}, cfg.Geo)
	if err != nil {
		slog.Error("Failed to initialize geocoder", "error", err)
		os.Exit(1)
	}

	engine := clearing.NewEngine(dbClient.Client, cfg, llmClient)
	pricer := clearing.NewPricer(cfg.Pricing)
	rates := marketrate.NewService(dbClient.Client, cfg.DLA, llmClient)
	dlaService := clearing.NewDLAService(dbClient.Client, engine, rates)
	engagements := engagement.NewService(dbClient.Client, pricer)
	needs := services.NewBuyerNeedService(dbClient.Client, geocoder)
	warehouses := services.NewWarehouseService(dbClient.Client)
	details := services.NewDetailFetcher(dbClient.Client)
	questions := services.NewQuestionService(dbClient.Client, engagements)
	slog.Info("Services initialized")

	// 6. SMS pipeline and worker pool
	planner := sms.NewPlanner(llmClient, cfg.SMS)
	tools := sms.NewTools(dbClient.Client, needs, engine, details, questions,
		engagements, cfg.SMS, cfg.System)
	responder := sms.NewResponder(llmClient, cfg.SMS)
	processor := sms.NewProcessor(dbClient.Client, planner, tools, responder, cfg.SMS)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, processor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Background scheduler
	jobs := scheduler.NewJobs(dbClient.Client, cfg.Scheduler, cfg.SMS, engagements)
	sched := scheduler.New()
	if err := jobs.Register(sched); err != nil {
		slog.Error("Failed to register scheduler jobs", "error", err)
		os.Exit(1)
	}
	sched.Start(ctx)

	// 8. Notification outbox drain
	outbox := notify.NewOutbox(dbClient.Client, cfg.Notifications, nil, nil)
	outbox.Start(ctx)

	// 9. HTTP server
	server := api.NewServer(api.Deps{
		Client:      dbClient.Client,
		DB:          dbClient,
		Config:      cfg,
		Engagements: engagements,
		DLA:         dlaService,
		Engine:      engine,
		Needs:       needs,
		Warehouses:  warehouses,
		Rates:       rates,
		Pool:        workerPool,
	})
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("WEX started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop intake first, then the workers, then the
	// periodic machinery, then the HTTP listener.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight messages will be orphan-recovered")
	}

	sched.Stop()
	outbox.Stop()

	slog.Info("Shutdown complete")
}
