package polymarket

import "github.com/shopspring/decimal"

// Side is the direction of a trade as reported by the Data API.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Trade is a single entry returned by the trades endpoint.
type Trade struct {
	ProxyWallet     string          `json:"proxyWallet"`
	Name            string          `json:"name"`
	Pseudonym       string          `json:"pseudonym"`
	Side            Side            `json:"side"`
	Size            decimal.Decimal `json:"size"`
	Price           decimal.Decimal `json:"price"`
	Timestamp       int64           `json:"timestamp"` // epoch seconds
	ConditionID     string          `json:"conditionId"`
	Outcome         string          `json:"outcome"`
	Title           string          `json:"title"`
	TransactionHash string          `json:"transactionHash"`
}

// DisplayName returns the trader's name, falling back to the pseudonym.
func (t Trade) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Pseudonym
}

// Cost is size × price.
func (t Trade) Cost() decimal.Decimal {
	return t.Size.Mul(t.Price)
}

// eventRecord covers both the Gamma and the legacy Strapi event payloads.
type eventRecord struct {
	Slug        string `json:"slug"`
	ConditionID string `json:"conditionId"`
	Markets     []struct {
		Slug        string `json:"slug"`
		ConditionID string `json:"conditionId"`
	} `json:"markets"`
}

// simplifiedMarketsResponse is the CLOB /simplified-markets envelope.
type simplifiedMarketsResponse struct {
	Data []struct {
		ConditionID string `json:"condition_id"`
	} `json:"data"`
}
