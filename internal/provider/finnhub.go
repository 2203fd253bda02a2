package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/tayara1972/apexview-backend/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const finnhubBaseURL = "https://finnhub.io/api/v1"

// FinnhubClient fetches stock and crypto quotes from the Finnhub API.
type FinnhubClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewFinnhubClient creates a quote client with built-in rate limiting
// tuned for the free tier (60 calls per minute).
func NewFinnhubClient(tracer trace.Tracer, apiKey string) *FinnhubClient {
	return &FinnhubClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: finnhubBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
		limiter: NewRateLimiter(60, time.Second),
	}
}

// Name identifies this provider in client-facing payloads.
func (p *FinnhubClient) Name() string { return "finnhub" }

// Ready reports whether the client has a credential to call with.
func (p *FinnhubClient) Ready() bool { return p.apiKey != "" }

// Quote fetches the current quote for one provider symbol. Numeric fields
// the provider omits or mangles come back nil rather than failing the call.
func (p *FinnhubClient) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	ctx, span := p.tracer.Start(ctx, "finnhub.quote")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol))

	if !p.Ready() {
		return nil, domain.ErrNotConfigured
	}

	u := fmt.Sprintf("%s/quote?symbol=%s&token=%s", p.baseURL, url.QueryEscape(symbol), p.apiKey)
	body, err := p.doRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	// Response shape: {"c": 261.74, "h": 263.31, "l": 260.68, "o": 261.07, "pc": 259.45}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse quote for %s: %w", symbol, domain.ErrUpstream)
	}

	return &domain.Quote{
		Symbol:        symbol,
		PreviousClose: finiteField(raw, "pc"),
		Current:       finiteField(raw, "c"),
		High:          finiteField(raw, "h"),
		Low:           finiteField(raw, "l"),
		Open:          finiteField(raw, "o"),
		Provider:      p.Name(),
	}, nil
}

func (p *FinnhubClient) doRequest(ctx context.Context, u string) ([]byte, error) {
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
		return nil, fmt.Errorf("finnhub request: %v: %w", err, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("finnhub status %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	return io.ReadAll(resp.Body)
}

// finiteField extracts a numeric field, returning nil for anything that is
// missing, non-numeric, or not finite. NaN never crosses this boundary.
func finiteField(raw map[string]json.RawMessage, key string) *float64 {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	var f float64
	if err := json.Unmarshal(msg, &f); err != nil {
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
