package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ukpabik/mid-diff/internal/adapter"
	"github.com/ukpabik/mid-diff/internal/api/server"
	"github.com/ukpabik/mid-diff/internal/config"
	"github.com/ukpabik/mid-diff/internal/ingest"
	"github.com/ukpabik/mid-diff/internal/logger"
	"github.com/ukpabik/mid-diff/internal/providers/ddragon"
	"github.com/ukpabik/mid-diff/internal/providers/riot"
	"github.com/ukpabik/mid-diff/internal/ratelimit"
	"github.com/ukpabik/mid-diff/internal/recommend"
	"github.com/ukpabik/mid-diff/internal/stats"
	"github.com/ukpabik/mid-diff/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting mid-diff API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Rate gate shared by every outbound Riot call
	gate, err := ratelimit.NewGate(cfg.RateLimit)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate gate", zap.Error(err))
	}

	// Riot API client
	riotHTTP := adapter.NewHTTPClient(cfg.Riot.HTTPTimeout)
	riotClient := riot.NewClient(riotHTTP, gate, clock, jsonAdapter, cfg.Riot)

	// Item catalog, loaded once at startup
	catalogHTTP := adapter.NewHTTPClient(cfg.DataDragon.HTTPTimeout)
	catalog := ddragon.NewCatalog(catalogHTTP, jsonAdapter, cfg.DataDragon)
	if err := catalog.Load(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to load item catalog", zap.Error(err))
	}

	// Ingestion pipeline
	ingester := ingest.NewIngester(riotClient, dataStore, clock, cfg.Worker)
	defer ingester.Close()

	// Build recommendation + on-demand aggregation
	recommender := recommend.NewRecommender(dataStore, catalog)
	aggregator := stats.NewAggregator(dataStore, clock)

	// Create and start server
	srv := server.New(cfg.Debug, cfg.Server, dataStore, ingester, recommender, aggregator)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
