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
	"github.com/ukpabik/mid-diff/internal/config"
	"github.com/ukpabik/mid-diff/internal/logger"
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
	cfg, err := config.LoadAggregatorConfig(*configFile, *envPath)
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
			"service": "aggregator",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting mid-diff aggregator",
		zap.String("cron_spec", cfg.Aggregator.CronSpec),
	)

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	// Initialize store and aggregator
	dataStore := store.NewPGStore(db)
	aggregator := stats.NewAggregator(dataStore, adapter.NewClock())

	// Optional rebuild at startup, before the schedule takes over
	if cfg.Aggregator.RunOnStart {
		result, err := aggregator.Rebuild(ctx)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("component", "aggregator"))
		} else {
			logger.InfoCtx(ctx, "Startup rebuild finished",
				zap.Int("matches", result.Matches),
				zap.Int("pairs", result.Pairs),
				zap.Duration("duration", result.Duration),
			)
		}
	}

	// Schedule the nightly rebuild
	scheduler, err := stats.NewScheduler(aggregator, cfg.Aggregator.CronSpec)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create scheduler", zap.Error(err))
	}
	scheduler.Start()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	cancel()

	// Wait for an in-flight rebuild to finish before exiting
	scheduler.Stop()

	logger.Info("Aggregator stopped")
}
