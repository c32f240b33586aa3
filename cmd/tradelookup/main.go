package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"polymarket-trade-lookup/internal/app"
	"polymarket-trade-lookup/internal/config"
	"polymarket-trade-lookup/internal/database"
	"polymarket-trade-lookup/internal/logger"
	"polymarket-trade-lookup/internal/polymarket"
	"polymarket-trade-lookup/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load application configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		// We can't use the logger here because it's not initialized yet.
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	runID := uuid.NewString()
	log = logger.ForRun(log, runID)

	endpoints, err := polymarket.EndpointsFromConfig(&cfg.Polymarket)
	if err != nil {
		log.Error("Invalid lookup configuration", zap.Error(err))
		return 1
	}

	client := polymarket.NewRestClient(&cfg.Polymarket, log)
	resolver := polymarket.NewResolver(client, endpoints, log)
	reporter := report.NewReporter(client, cfg.Polymarket.TradeLimit, log)

	if cfg.Database.DSN != "" {
		db, err := database.NewDatabase(cfg.Database.DSN)
		if err != nil {
			// The report does not depend on the archive.
			log.Warn("Trade archive unavailable", zap.Error(err))
		} else {
			reporter.WithArchive(database.NewTradeArchive(db), runID)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(resolver, reporter, log).Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Error("Trade lookup failed", zap.Error(err))
		return 1
	}
	return 0
}
