package polymarket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "Event", url: "https://polymarket.com/event/presidential-election-winner-2024", want: "presidential-election-winner-2024"},
		{name: "TrailingSlash", url: "https://polymarket.com/event/fed-decision/", want: "fed-decision"},
		{name: "NestedMarket", url: "https://polymarket.com/event/fed-decision/fed-cuts-25bps?tid=1", want: "fed-decision"},
		{name: "SurroundingWhitespace", url: "  https://polymarket.com/event/btc-100k \n", want: "btc-100k"},
		{name: "MarketPath", url: "https://polymarket.com/market/fed-decision", wantErr: true},
		{name: "EventOnly", url: "https://polymarket.com/event/", wantErr: true},
		{name: "Root", url: "https://polymarket.com/", wantErr: true},
		{name: "Empty", url: "", wantErr: true},
		{name: "Unparsable", url: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEventURL(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
