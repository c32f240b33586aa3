package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ArchivedTrade is a reported trade stored in the archive.
// Rows from one CLI invocation share a RunID.
type ArchivedTrade struct {
	gorm.Model
	RunID           string          `gorm:"index;not null" json:"run_id"`
	ConditionID     string          `gorm:"index;not null" json:"condition_id"`
	Trader          string          `json:"trader"`
	Address         string          `json:"address"`
	Side            string          `json:"side"` // "BUY" or "SELL"
	Size            decimal.Decimal `gorm:"type:text" json:"size"`
	Price           decimal.Decimal `gorm:"type:text" json:"price"`
	Cost            decimal.Decimal `gorm:"type:text" json:"cost"`
	TradedAt        time.Time       `gorm:"index" json:"traded_at"`
	TransactionHash string          `json:"transaction_hash,omitempty"`
}
