package polymarket

import (
	"context"

	"go.uber.org/zap"
)

// Resolver maps an event slug to a condition ID by trying each endpoint in order.
type Resolver struct {
	client    RestClientInterface
	endpoints []Endpoint
	logger    *zap.Logger
}

// NewResolver creates a Resolver over endpoints, highest priority first.
func NewResolver(client RestClientInterface, endpoints []Endpoint, logger *zap.Logger) *Resolver {
	return &Resolver{
		client:    client,
		endpoints: endpoints,
		logger:    logger.Named("resolver"),
	}
}

// Resolve returns the condition ID from the first endpoint that knows the slug.
// Endpoint failures are logged and skipped; ok is false once every endpoint
// has been tried without a match.
func (r *Resolver) Resolve(ctx context.Context, slug string) (conditionID string, ok bool) {
	for _, ep := range r.endpoints {
		id, err := r.try(ctx, ep, slug)
		if err != nil {
			r.logger.Warn("Lookup endpoint failed, trying next",
				zap.String("endpoint", ep.Name),
				zap.String("slug", slug),
				zap.Error(err),
			)
			continue
		}
		if id == "" {
			r.logger.Info("No market found at endpoint", zap.String("endpoint", ep.Name), zap.String("slug", slug))
			continue
		}

		r.logger.Info("Resolved condition ID",
			zap.String("endpoint", ep.Name),
			zap.String("slug", slug),
			zap.String("condition_id", id),
		)
		return id, true
	}

	r.logger.Warn("Slug not found at any endpoint", zap.String("slug", slug), zap.Int("endpoints", len(r.endpoints)))
	return "", false
}

func (r *Resolver) try(ctx context.Context, ep Endpoint, slug string) (string, error) {
	body, err := r.client.Get(ctx, ep.Name, ep.URL, map[string]string{ep.Param: slug}, ep.Timeout)
	if err != nil {
		return "", err
	}

	id, err := ep.Parse(body)
	if err != nil {
		return "", &EndpointError{Endpoint: ep.Name, Err: err}
	}
	return id, nil
}
