package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tayara1972/apexview-backend/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const alphaVantageBaseURL = "https://www.alphavantage.co/query"

// AlphaVantageClient serves FX rate lookups and symbol search. Alpha
// Vantage wraps every field in numbered string keys ("5. Exchange Rate"),
// so all of that stays behind this type; nothing numbered leaks out.
type AlphaVantageClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewAlphaVantageClient creates a client rate limited for the free tier
// (5 calls per minute, one token every 12 seconds).
func NewAlphaVantageClient(tracer trace.Tracer, apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: alphaVantageBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
		limiter: NewRateLimiter(5, 12*time.Second),
	}
}

// Name identifies this provider in client-facing payloads.
func (p *AlphaVantageClient) Name() string { return "alphavantage" }

// Ready reports whether the client has a credential to call with.
func (p *AlphaVantageClient) Ready() bool { return p.apiKey != "" }

// ExchangeRate fetches the direct rate for one currency pair.
func (p *AlphaVantageClient) ExchangeRate(ctx context.Context, from, to string) (*domain.FxRate, error) {
	ctx, span := p.tracer.Start(ctx, "alphavantage.exchange-rate")
	defer span.End()
	span.SetAttributes(attribute.String("from", from), attribute.String("to", to))

	if !p.Ready() {
		return nil, domain.ErrNotConfigured
	}

	u := fmt.Sprintf("%s?function=CURRENCY_EXCHANGE_RATE&from_currency=%s&to_currency=%s&apikey=%s",
		p.baseURL, url.QueryEscape(from), url.QueryEscape(to), p.apiKey)

	body, err := p.doRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	var raw struct {
		ErrorMessage string            `json:"Error Message"`
		Note         string            `json:"Note"`
		Rate         map[string]string `json:"Realtime Currency Exchange Rate"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse exchange rate: %w", domain.ErrUpstream)
	}

	// An error-message payload means the provider understood us but not the
	// currency pair. That is the caller's mistake, not an outage.
	if raw.ErrorMessage != "" {
		return nil, fmt.Errorf("unsupported currency pair %s/%s: %w", from, to, domain.ErrInvalidInput)
	}
	if raw.Note != "" || raw.Rate == nil {
		return nil, fmt.Errorf("exchange rate unavailable for %s/%s: %w", from, to, domain.ErrUpstream)
	}

	rate, err := strconv.ParseFloat(raw.Rate["5. Exchange Rate"], 64)
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, fmt.Errorf("non-finite exchange rate for %s/%s: %w", from, to, domain.ErrUpstream)
	}

	updated := time.Now().UTC()
	if ts, err := time.Parse("2006-01-02 15:04:05", raw.Rate["6. Last Refreshed"]); err == nil {
		updated = ts.UTC()
	}

	return &domain.FxRate{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         rate,
		Provider:     p.Name(),
		LastUpdated:  updated,
	}, nil
}

// Search proxies a free-text query to the SYMBOL_SEARCH endpoint and
// reshapes the match list. Matches missing a symbol or name are dropped.
func (p *AlphaVantageClient) Search(ctx context.Context, query string) ([]domain.SymbolMatch, error) {
	ctx, span := p.tracer.Start(ctx, "alphavantage.symbol-search")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	if !p.Ready() {
		return nil, domain.ErrNotConfigured
	}

	u := fmt.Sprintf("%s?function=SYMBOL_SEARCH&keywords=%s&apikey=%s",
		p.baseURL, url.QueryEscape(query), p.apiKey)

	body, err := p.doRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	var raw struct {
		BestMatches []map[string]string `json:"bestMatches"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse search results: %w", domain.ErrUpstream)
	}

	matches := make([]domain.SymbolMatch, 0, len(raw.BestMatches))
	for _, m := range raw.BestMatches {
		match := domain.SymbolMatch{
			Symbol:   m["1. symbol"],
			Name:     m["2. name"],
			Region:   m["4. region"],
			Currency: m["8. currency"],
		}
		if match.Symbol == "" || match.Name == "" {
			continue
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func (p *AlphaVantageClient) doRequest(ctx context.Context, u string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %v: %w", err, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage status %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	return io.ReadAll(resp.Body)
}
