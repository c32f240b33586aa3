package polymarket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"polymarket-trade-lookup/internal/config"
)

// RestClientInterface defines the calls the lookup and reporting steps need.
type RestClientInterface interface {
	Get(ctx context.Context, endpoint, url string, params map[string]string, timeout time.Duration) ([]byte, error)
	GetTrades(ctx context.Context, market string, limit int) ([]Trade, error)
}

// RestClient is a client for the public Polymarket HTTP APIs.
// It implements the RestClientInterface.
type RestClient struct {
	client        *resty.Client
	tradesURL     string
	tradesTimeout time.Duration
	logger        *zap.Logger
	limiter       *rate.Limiter
}

// ensure RestClient implements the interface
var _ RestClientInterface = (*RestClient)(nil)

// NewRestClient creates a new Polymarket REST client.
func NewRestClient(cfg *config.Polymarket, logger *zap.Logger) *RestClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	// rate.Limit is requests per second; zero means no pacing.
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		logger.Info("Outbound request pacing enabled", zap.Float64("requests_per_second", cfg.RateLimit))
	}
	burst := cfg.RateLimitBurst
	if burst < 1 {
		burst = 1
	}

	return &RestClient{
		client:        client,
		tradesURL:     cfg.TradesURL,
		tradesTimeout: cfg.TradesTimeout,
		logger:        logger,
		limiter:       rate.NewLimiter(limit, burst),
	}
}

// Get issues a single GET with a bounded wait and returns the raw body.
// Every failure, including a non-2xx status, is an *EndpointError.
func (c *RestClient) Get(ctx context.Context, endpoint, url string, params map[string]string, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &EndpointError{Endpoint: endpoint, Err: fmt.Errorf("rate limiter wait failed: %w", err)}
	}

	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(params)

	c.logger.Debug("Executing request",
		zap.String("endpoint", endpoint),
		zap.String("url", url),
		zap.Any("params", params),
	)
	resp, err := req.Execute("GET", url)
	if err != nil {
		return nil, &EndpointError{Endpoint: endpoint, Err: err}
	}
	if resp.IsError() {
		return nil, &EndpointError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode(),
			Err:        errors.New(resp.Status()),
		}
	}

	return resp.Body(), nil
}

// GetTrades fetches up to limit recent trades for a market, maker and taker sides.
func (c *RestClient) GetTrades(ctx context.Context, market string, limit int) ([]Trade, error) {
	params := map[string]string{
		"market":    market,
		"limit":     strconv.Itoa(limit),
		"takerOnly": "false",
	}

	body, err := c.Get(ctx, "trades", c.tradesURL, params, c.tradesTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTradeFetchFailed, err)
	}

	var trades []Trade
	if err := json.Unmarshal(body, &trades); err != nil {
		return nil, fmt.Errorf("%w: decode trades: %w", ErrTradeFetchFailed, err)
	}

	return trades, nil
}
