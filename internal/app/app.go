package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"polymarket-trade-lookup/internal/polymarket"
	"polymarket-trade-lookup/internal/report"
)

// ErrMarketNotFound is returned when no lookup endpoint knows the slug.
var ErrMarketNotFound = errors.New("condition ID not found")

// Prompt is written before reading the market URL.
const Prompt = "Enter Polymarket event URL: "

// App runs one URL → condition ID → trade report pass.
type App struct {
	resolver *polymarket.Resolver
	reporter *report.Reporter
	logger   *zap.Logger
}

// New creates an App.
func New(resolver *polymarket.Resolver, reporter *report.Reporter, logger *zap.Logger) *App {
	return &App{
		resolver: resolver,
		reporter: reporter,
		logger:   logger,
	}
}

// Run prompts on out, reads a single URL from in and prints the trade report.
// Only an invalid URL or an unresolvable slug is returned as an error.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, Prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read URL: %w", err)
	}
	rawURL := strings.TrimSpace(line)

	slug, err := polymarket.ParseEventURL(rawURL)
	if err != nil {
		fmt.Fprintf(out, "Invalid Polymarket URL: %s\n", rawURL)
		return err
	}
	a.logger.Info("Looking up slug", zap.String("slug", slug))

	conditionID, ok := a.resolver.Resolve(ctx, slug)
	if !ok {
		fmt.Fprintln(out, "Failed to fetch condition ID.")
		return fmt.Errorf("%w: %s", ErrMarketNotFound, slug)
	}
	fmt.Fprintf(out, "Condition ID: %s\n\n", conditionID)

	n, err := a.reporter.Run(ctx, out, conditionID)
	if err != nil {
		return err
	}
	a.logger.Info("Report complete", zap.String("condition_id", conditionID), zap.Int("trades", n))
	return nil
}
