/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the wealth simulation server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env file, environment)
  2. Parse command-line flags (override the environment)
  3. Initialize the structured logger
  4. Create the scenario store and API handler
  5. Start the history warmer
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: $PORT or 8080)
  -log-level  debug, info, warn, error (default: $LOG_LEVEL or info)
  -db         SQLite file for registered scenarios (default: $DATABASE_PATH,
              empty keeps them in memory)

ENVIRONMENT:
  PORT, LOG_LEVEL, MAX_HORIZON_MONTHS, HISTORY_CACHE_TTL,
  RATE_LIMIT_RPS, RATE_LIMIT_BURST, CORS_ALLOWED_ORIGINS, DATABASE_PATH

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop the history warmer
  2. Stop accepting new connections
  3. Wait for active requests to complete (30s timeout)
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Environment variables
*/
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

	"github.com/warp/wealth-engine/api"
	"github.com/warp/wealth-engine/config"
	"github.com/warp/wealth-engine/generic"
	"github.com/warp/wealth-engine/generic/store"
	"github.com/warp/wealth-engine/logger"
	"github.com/warp/wealth-engine/store/sqlite"
)

func main() {
	cfg := config.Load()

	// Flags
	port := flag.Int("port", cfg.Port, "HTTP server port")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	dbPath := flag.String("db", cfg.DatabasePath, "SQLite database path (empty: in-memory)")
	flag.Parse()

	logger.Init(*logLevel)

	// Initialize store
	var scenarios generic.ScenarioStore
	if *dbPath != "" {
		db, err := sqlite.New(*dbPath)
		if err != nil {
			logger.L.Error("Failed to open database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		scenarios = db
		logger.L.Info("Using SQLite scenario store", "path", *dbPath)
	} else {
		scenarios = store.NewMemory()
	}

	// Initialize handler
	handler := api.NewHandler(scenarios, cfg.MaxHorizonMonths, cfg.HistoryCacheTTL)

	warmer := api.NewHistoryWarmer(handler)
	warmer.Start()

	// Create router
	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.L.Info("Server starting",
			"addr", fmt.Sprintf("http://localhost:%d", *port),
			"maxHorizonMonths", cfg.MaxHorizonMonths)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L.Info("Shutting down server...")
	warmer.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.L.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.L.Info("Server stopped")
}
