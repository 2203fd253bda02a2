package domain

import (
	"regexp"
	"strings"
)

var symbolRx = regexp.MustCompile(`^[A-Z0-9.-]{1,20}$`)
var cryptoUSDRx = regexp.MustCompile(`^([A-Z0-9]{2,10})-USD$`)
var currencyRx = regexp.MustCompile(`^[A-Z]{3,5}$`)

// binancePair maps well-known crypto aliases to the Binance USDT pair the
// quote provider expects. Both the bare alias and its -USD form resolve to
// the same pair, so they share one cache entry.
var binancePair = map[string]string{
	"BTC":   "BINANCE:BTCUSDT",
	"ETH":   "BINANCE:ETHUSDT",
	"SOL":   "BINANCE:SOLUSDT",
	"XRP":   "BINANCE:XRPUSDT",
	"ADA":   "BINANCE:ADAUSDT",
	"DOGE":  "BINANCE:DOGEUSDT",
	"DOT":   "BINANCE:DOTUSDT",
	"AVAX":  "BINANCE:AVAXUSDT",
	"LINK":  "BINANCE:LINKUSDT",
	"MATIC": "BINANCE:MATICUSDT",
}

// ValidSymbol reports whether a client-supplied ticker is syntactically
// acceptable after NormalizeSymbol. Anything else is a client error, not
// something to silently drop.
func ValidSymbol(symbol string) bool {
	return symbolRx.MatchString(symbol)
}

// NormalizeSymbol uppercases and trims a raw client ticker.
func NormalizeSymbol(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// MapSymbol translates a normalized client symbol into the identifier the
// quote provider understands. Known crypto aliases (and their -USD forms)
// hit the fixed table; anything else shaped like XXX-USD gets a Binance
// pair synthesized from its base; plain tickers pass through untouched and
// are assumed to be stock/ETF symbols the provider handles natively.
func MapSymbol(symbol string) string {
	if pair, ok := binancePair[symbol]; ok {
		return pair
	}
	if m := cryptoUSDRx.FindStringSubmatch(symbol); m != nil {
		if pair, ok := binancePair[m[1]]; ok {
			return pair
		}
		return "BINANCE:" + m[1] + "USDT"
	}
	return symbol
}

// ValidCurrency reports whether a currency code looks like one the FX
// provider could know about (ISO 4217 or a short crypto code).
func ValidCurrency(code string) bool {
	return currencyRx.MatchString(code)
}
