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
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/puckwatch/puckwatch/internal/adapter"
	"github.com/puckwatch/puckwatch/internal/config"
	"github.com/puckwatch/puckwatch/internal/domain"
	"github.com/puckwatch/puckwatch/internal/ingest"
	"github.com/puckwatch/puckwatch/internal/logger"
	"github.com/puckwatch/puckwatch/internal/providers/nhl"
	"github.com/puckwatch/puckwatch/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	dateArg    = flag.String("date", "", "Date to fetch (YYYY-MM-DD), defaults to today")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadFetcherConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context canceled on shutdown signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "fetcher",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	// Migrate schema
	if err := store.AutoMigrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}

	// Initialize the ingestion pipeline
	dataStore := store.NewPGStore(db)
	httpClient := adapter.NewHTTPClient(cfg.NHL.HTTPTimeout)
	nhlClient := nhl.NewClient(httpClient, cfg.NHL.BaseURL)
	clock := adapter.NewClock()
	service := ingest.NewService(clock, nhlClient, dataStore)

	date, err := service.ResolveDate(*dateArg)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid date argument", zap.Error(err), zap.String("date", *dateArg))
	}

	result, err := service.Run(ctx, date)
	if err != nil {
		logger.FatalCtx(ctx, "Fetch failed", zap.Error(err), zap.String("date", domain.FormatGameDate(date)))
	}

	logger.InfoCtx(ctx, "Fetch complete",
		zap.String("date", domain.FormatGameDate(date)),
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped),
	)
}
