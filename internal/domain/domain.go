package domain

import "time"

// Quote is the normalized quote shape returned to clients regardless of
// which upstream provider produced it. Numeric fields are pointers so a
// field an upstream could not supply serializes as null rather than 0.
type Quote struct {
	Symbol        string   `json:"symbol"`
	PreviousClose *float64 `json:"previousClose"`
	Current       *float64 `json:"current"`
	High          *float64 `json:"high"`
	Low           *float64 `json:"low"`
	Open          *float64 `json:"open"`
	Provider      string   `json:"provider"`
}

// WithSymbol returns a copy of the quote carrying the given client-facing
// symbol. Cache entries are keyed by provider symbol, so the original
// client alias has to be substituted back in before the quote leaves the
// service.
func (q Quote) WithSymbol(symbol string) Quote {
	q.Symbol = symbol
	return q
}

// FxRate is a single pairwise exchange rate.
type FxRate struct {
	FromCurrency string    `json:"fromCurrency"`
	ToCurrency   string    `json:"toCurrency"`
	Rate         float64   `json:"rate"`
	Provider     string    `json:"provider"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// SymbolMatch is one normalized result from a symbol search.
type SymbolMatch struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	Currency string `json:"currency"`
}

// QuoteBatch is the /quotes response body.
type QuoteBatch struct {
	Source         string           `json:"source"`
	Data           map[string]Quote `json:"data"`
	InvalidSymbols []string         `json:"invalidSymbols,omitempty"`
}
