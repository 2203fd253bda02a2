package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tayara1972/apexview-backend/internal/cache"
	"github.com/tayara1972/apexview-backend/internal/config"
	"github.com/tayara1972/apexview-backend/internal/domain"
	"github.com/tayara1972/apexview-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

func f(v float64) *float64 { return &v }

type stubQuoteProvider struct {
	ready bool
	fail  map[string]bool
}

func (p *stubQuoteProvider) Name() string { return "finnhub" }
func (p *stubQuoteProvider) Ready() bool  { return p.ready }

func (p *stubQuoteProvider) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	if p.fail[symbol] {
		return nil, fmt.Errorf("boom: %w", domain.ErrUpstream)
	}
	return &domain.Quote{Symbol: symbol, Current: f(100), Provider: "finnhub"}, nil
}

type stubFxProvider struct {
	ready bool
	err   error
}

func (p *stubFxProvider) Name() string { return "alphavantage" }
func (p *stubFxProvider) Ready() bool  { return p.ready }

func (p *stubFxProvider) ExchangeRate(ctx context.Context, from, to string) (*domain.FxRate, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &domain.FxRate{FromCurrency: from, ToCurrency: to, Rate: 0.92, Provider: "alphavantage", LastUpdated: time.Now().UTC()}, nil
}

type stubSearchProvider struct {
	ready bool
	err   error
}

func (p *stubSearchProvider) Name() string { return "alphavantage" }
func (p *stubSearchProvider) Ready() bool  { return p.ready }

func (p *stubSearchProvider) Search(ctx context.Context, query string) ([]domain.SymbolMatch, error) {
	if p.err != nil {
		return nil, p.err
	}
	return []domain.SymbolMatch{{Symbol: "AAPL", Name: "Apple Inc", Region: "United States", Currency: "USD"}}, nil
}

type testDeps struct {
	quote  *stubQuoteProvider
	fx     *stubFxProvider
	search *stubSearchProvider
}

func newTestRouter(deps testDeps) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Environment: "test", RateLimitPerMin: 1000}
	store := cache.New()

	h := New(
		testTracer,
		cfg,
		service.NewQuoteService(testTracer, deps.quote, store),
		service.NewFxService(testTracer, deps.fx, store),
		service.NewSearchService(testTracer, deps.search, store),
	)

	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func defaultDeps() testDeps {
	return testDeps{
		quote:  &stubQuoteProvider{ready: true, fail: map[string]bool{}},
		fx:     &stubFxProvider{ready: true},
		search: &stubSearchProvider{ready: true},
	}
}

func doRequest(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestStatus(t *testing.T) {
	r := newTestRouter(defaultDeps())
	w := doRequest(r, http.MethodGet, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"service":"apexview-backend"`, `"environment":"test"`, `"cacheTtlMinutes":60`, `"finnhub"`, `"alphavantage"`} {
		if !strings.Contains(body, want) {
			t.Errorf("status body missing %s: %s", want, body)
		}
	}
}
