package polymarket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polymarket-trade-lookup/internal/config"
)

func TestParseEvents(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "MarketConditionID", body: `[{"slug":"fed","markets":[{"conditionId":"0xaaa"},{"conditionId":"0xbbb"}]}]`, want: "0xaaa"},
		{name: "RecordConditionID", body: `[{"slug":"fed","conditionId":"0xccc"}]`, want: "0xccc"},
		{name: "SkipsEmptyRecords", body: `[{"slug":"a","markets":[]},{"slug":"b","markets":[{"conditionId":"0xddd"}]}]`, want: "0xddd"},
		{name: "EmptyList", body: `[]`, want: ""},
		{name: "NotAList", body: `{"error":"bad"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEvents([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSimplifiedMarkets(t *testing.T) {
	got, err := ParseSimplifiedMarkets([]byte(`{"data":[{"condition_id":"0x111"},{"condition_id":"0x222"}],"next_cursor":"LTE="}`))
	assert.NoError(t, err)
	assert.Equal(t, "0x111", got)

	got, err = ParseSimplifiedMarkets([]byte(`{"data":[]}`))
	assert.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseSimplifiedMarkets([]byte(`<html>`))
	assert.Error(t, err)
}

func TestEndpointsFromConfig(t *testing.T) {
	cfg := &config.Polymarket{
		ArchiveURL:     "https://archive.test/events",
		EventsURL:      "https://gamma.test/events",
		ClobURL:        "https://clob.test/simplified-markets",
		ArchiveTimeout: 5 * time.Second,
		EventsTimeout:  5 * time.Second,
		ClobTimeout:    10 * time.Second,
	}

	t.Run("ConfiguredOrder", func(t *testing.T) {
		cfg := *cfg
		cfg.LookupOrder = []string{"clob", "archive"}

		endpoints, err := EndpointsFromConfig(&cfg)
		require.NoError(t, err)
		require.Len(t, endpoints, 2)

		assert.Equal(t, EndpointClob, endpoints[0].Name)
		assert.Equal(t, "market_slug", endpoints[0].Param)
		assert.Equal(t, 10*time.Second, endpoints[0].Timeout)
		assert.Equal(t, EndpointArchive, endpoints[1].Name)
		assert.Equal(t, "slug", endpoints[1].Param)
		assert.Equal(t, cfg.ArchiveURL, endpoints[1].URL)
	})

	t.Run("UnknownName", func(t *testing.T) {
		cfg := *cfg
		cfg.LookupOrder = []string{"events", "strapi"}

		_, err := EndpointsFromConfig(&cfg)
		assert.ErrorContains(t, err, `unknown lookup endpoint "strapi"`)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := EndpointsFromConfig(cfg)
		assert.Error(t, err)
	})
}
