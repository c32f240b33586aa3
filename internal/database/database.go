package database

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"polymarket-trade-lookup/internal/models"
	"polymarket-trade-lookup/internal/polymarket"
)

// NewDatabase opens the sqlite archive and migrates its schema.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// sqlite allows a single writer; an in-memory DSN is per connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.ArchivedTrade{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	return db, nil
}

// TradeArchive stores reported trades.
type TradeArchive struct {
	db *gorm.DB
}

// NewTradeArchive wraps an open database.
func NewTradeArchive(db *gorm.DB) *TradeArchive {
	return &TradeArchive{db: db}
}

// Stats summarises the archive contents.
type Stats struct {
	Trades  int64 `json:"trades"`
	Markets int64 `json:"markets"`
	Runs    int64 `json:"runs"`
}

// SaveTrades stores one row per trade, all or nothing.
func (a *TradeArchive) SaveTrades(runID, conditionID string, trades []polymarket.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	rows := make([]models.ArchivedTrade, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, models.ArchivedTrade{
			RunID:           runID,
			ConditionID:     conditionID,
			Trader:          t.DisplayName(),
			Address:         t.ProxyWallet,
			Side:            string(t.Side),
			Size:            t.Size,
			Price:           t.Price,
			Cost:            t.Cost(),
			TradedAt:        time.Unix(t.Timestamp, 0).UTC(),
			TransactionHash: t.TransactionHash,
		})
	}

	return a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to archive %d trades for %s: %w", len(rows), conditionID, err)
		}
		return nil
	})
}

// RecentTrades returns up to limit archived trades, newest first.
// An empty conditionID matches every market.
func (a *TradeArchive) RecentTrades(conditionID string, limit int) ([]models.ArchivedTrade, error) {
	q := a.db.Order("traded_at desc").Order("id asc")
	if conditionID != "" {
		q = q.Where("condition_id = ?", conditionID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var trades []models.ArchivedTrade
	if err := q.Find(&trades).Error; err != nil {
		return nil, fmt.Errorf("failed to query archived trades: %w", err)
	}
	return trades, nil
}

// Stats counts archived trades, distinct markets and distinct runs.
func (a *TradeArchive) Stats() (Stats, error) {
	var s Stats
	m := a.db.Model(&models.ArchivedTrade{})
	if err := m.Count(&s.Trades).Error; err != nil {
		return s, fmt.Errorf("failed to count trades: %w", err)
	}
	if err := a.db.Model(&models.ArchivedTrade{}).Distinct("condition_id").Count(&s.Markets).Error; err != nil {
		return s, fmt.Errorf("failed to count markets: %w", err)
	}
	if err := a.db.Model(&models.ArchivedTrade{}).Distinct("run_id").Count(&s.Runs).Error; err != nil {
		return s, fmt.Errorf("failed to count runs: %w", err)
	}
	return s, nil
}
