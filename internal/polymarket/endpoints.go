package polymarket

import (
	"encoding/json"
	"fmt"
	"time"

	"polymarket-trade-lookup/internal/config"
)

// Endpoint names accepted in polymarket.lookup_order.
const (
	EndpointArchive = "archive"
	EndpointEvents  = "events"
	EndpointClob    = "clob"
)

// ParseFunc extracts a condition ID from a response body.
// An empty ID with a nil error means the endpoint had no matching record.
type ParseFunc func(body []byte) (string, error)

// Endpoint is one slug → condition ID source.
type Endpoint struct {
	Name    string
	URL     string
	Param   string // query parameter that carries the slug
	Timeout time.Duration
	Parse   ParseFunc
}

// EndpointsFromConfig builds the lookup endpoints in the configured priority order.
func EndpointsFromConfig(cfg *config.Polymarket) ([]Endpoint, error) {
	known := map[string]Endpoint{
		EndpointArchive: {Name: EndpointArchive, URL: cfg.ArchiveURL, Param: "slug", Timeout: cfg.ArchiveTimeout, Parse: ParseEvents},
		EndpointEvents:  {Name: EndpointEvents, URL: cfg.EventsURL, Param: "slug", Timeout: cfg.EventsTimeout, Parse: ParseEvents},
		EndpointClob:    {Name: EndpointClob, URL: cfg.ClobURL, Param: "market_slug", Timeout: cfg.ClobTimeout, Parse: ParseSimplifiedMarkets},
	}

	if len(cfg.LookupOrder) == 0 {
		return nil, fmt.Errorf("lookup order is empty")
	}

	endpoints := make([]Endpoint, 0, len(cfg.LookupOrder))
	for _, name := range cfg.LookupOrder {
		ep, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("unknown lookup endpoint %q", name)
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints, nil
}

// ParseEvents reads an array of event records as served by the Gamma and the
// legacy archive APIs. The first record carrying a conditionId, either on
// itself or on its first market, wins.
func ParseEvents(body []byte) (string, error) {
	var records []eventRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return "", fmt.Errorf("decode events: %w", err)
	}

	for _, r := range records {
		if r.ConditionID != "" {
			return r.ConditionID, nil
		}
		if len(r.Markets) > 0 && r.Markets[0].ConditionID != "" {
			return r.Markets[0].ConditionID, nil
		}
	}
	return "", nil
}

// ParseSimplifiedMarkets reads the CLOB {"data": [...]} envelope and returns
// the condition_id of the first entry.
func ParseSimplifiedMarkets(body []byte) (string, error) {
	var payload simplifiedMarketsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode simplified markets: %w", err)
	}

	if len(payload.Data) == 0 {
		return "", nil
	}
	return payload.Data[0].ConditionID, nil
}
