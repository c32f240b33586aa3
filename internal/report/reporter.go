package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"polymarket-trade-lookup/internal/polymarket"
)

// NoTradesNotice is printed instead of an empty report.
const NoTradesNotice = "No trades found for this market."

// DefaultLimit is the page size used when none is configured.
const DefaultLimit = 50

const timeLayout = "2006-01-02 15:04:05"

// TradeFetcher retrieves recent trades for a market.
type TradeFetcher interface {
	GetTrades(ctx context.Context, market string, limit int) ([]polymarket.Trade, error)
}

// Archiver stores the trades of a report run.
type Archiver interface {
	SaveTrades(runID, conditionID string, trades []polymarket.Trade) error
}

// Reporter fetches, filters and renders the recent trades of a market.
type Reporter struct {
	fetcher  TradeFetcher
	archiver Archiver
	runID    string
	limit    int
	loc      *time.Location
	logger   *zap.Logger
}

// NewReporter creates a Reporter. A non-positive limit falls back to DefaultLimit.
func NewReporter(fetcher TradeFetcher, limit int, logger *zap.Logger) *Reporter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Reporter{
		fetcher: fetcher,
		limit:   limit,
		loc:     time.Local,
		logger:  logger.Named("reporter"),
	}
}

// WithArchive makes Run store every rendered trade under runID.
func (r *Reporter) WithArchive(a Archiver, runID string) *Reporter {
	r.archiver = a
	r.runID = runID
	return r
}

// WithLocation sets the zone trade times are rendered in.
func (r *Reporter) WithLocation(loc *time.Location) *Reporter {
	r.loc = loc
	return r
}

// Fetch returns the most recent trades for market. A failed request is
// logged and reported as no trades.
func (r *Reporter) Fetch(ctx context.Context, market string) []polymarket.Trade {
	trades, err := r.fetcher.GetTrades(ctx, market, r.limit)
	if err != nil {
		r.logger.Error("Failed to fetch trades", zap.String("condition_id", market), zap.Error(err))
		return nil
	}
	r.logger.Debug("Fetched trades", zap.String("condition_id", market), zap.Int("count", len(trades)))
	return trades
}

// Run writes the trade report for market to w and returns the number of
// entries rendered.
func (r *Reporter) Run(ctx context.Context, w io.Writer, market string) (int, error) {
	trades := Filter(r.Fetch(ctx, market))

	if r.archiver != nil {
		if err := r.archiver.SaveTrades(r.runID, market, trades); err != nil {
			r.logger.Error("Failed to archive trades", zap.Error(err))
		}
	}

	if err := Render(w, trades, r.loc); err != nil {
		return 0, fmt.Errorf("failed to write report: %w", err)
	}
	return len(trades), nil
}

// Filter keeps trades that carry a name or pseudonym, in their original order.
func Filter(trades []polymarket.Trade) []polymarket.Trade {
	kept := make([]polymarket.Trade, 0, len(trades))
	for _, t := range trades {
		if t.DisplayName() != "" {
			kept = append(kept, t)
		}
	}
	return kept
}

// Render writes one numbered block per trade, or NoTradesNotice when there are none.
func Render(w io.Writer, trades []polymarket.Trade, loc *time.Location) error {
	if len(trades) == 0 {
		_, err := fmt.Fprintln(w, NoTradesNotice)
		return err
	}

	if _, err := fmt.Fprintf(w, "Recent trades (%d):\n\n", len(trades)); err != nil {
		return err
	}
	for i, t := range trades {
		_, err := fmt.Fprintf(w,
			"%d. Trader: %s\n   Address: %s\n   Size: %s\n   Price: %s\n   Cost: $%s\n   Side: %s\n   Time: %s\n\n",
			i+1,
			t.DisplayName(),
			t.ProxyWallet,
			t.Size.String(),
			t.Price.String(),
			t.Cost().StringFixed(2),
			t.Side,
			time.Unix(t.Timestamp, 0).In(loc).Format(timeLayout),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
