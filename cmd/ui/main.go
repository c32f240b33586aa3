package main

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"polymarket-trade-lookup/internal/config"
	"polymarket-trade-lookup/internal/database"
	"polymarket-trade-lookup/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.Database.DSN == "" {
		log.Fatal("database.dsn is not set; nothing to serve")
	}

	// Connect to the archive
	db, err := database.NewDatabase(cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	mux := newMux(NewAPIHandler(log, database.NewTradeArchive(db)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting archive viewer", zap.String("address", addr))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal("Web server failed", zap.Error(err))
	}
}

func newMux(h *APIHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", h.StatusHandler)
	mux.HandleFunc("GET /api/trades", h.TradesHandler)
	return mux
}
