package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"polymarket-trade-lookup/internal/database"
)

const (
	defaultTradesLimit = 100
	maxTradesLimit     = 1000
)

// APIHandler holds dependencies for the API endpoints.
type APIHandler struct {
	log     *zap.Logger
	archive *database.TradeArchive
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(log *zap.Logger, archive *database.TradeArchive) *APIHandler {
	return &APIHandler{log: log, archive: archive}
}

// TradesHandler returns archived trades, newest first, optionally for one market.
func (h *APIHandler) TradesHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultTradesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxTradesLimit)
	}

	trades, err := h.archive.RecentTrades(r.URL.Query().Get("market"), limit)
	if err != nil {
		h.log.Error("Failed to get trades from archive", zap.Error(err))
		http.Error(w, "Failed to get trades", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.log, trades)
}

// StatusHandler returns archive totals.
func (h *APIHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.archive.Stats()
	if err != nil {
		h.log.Error("Failed to get archive stats", zap.Error(err))
		http.Error(w, "Failed to get status", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.log, stats)
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", zap.Error(err))
	}
}
