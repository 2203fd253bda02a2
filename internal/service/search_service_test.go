package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tayara1972/apexview-backend/internal/cache"
	"github.com/tayara1972/apexview-backend/internal/domain"
)

type fakeSearchProvider struct {
	results []domain.SymbolMatch
	err     error
	ready   bool
	calls   int
}

func (p *fakeSearchProvider) Name() string { return "fake" }
func (p *fakeSearchProvider) Ready() bool  { return p.ready }

func (p *fakeSearchProvider) Search(ctx context.Context, query string) ([]domain.SymbolMatch, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.results, nil
}

func TestSearchReturnsMatches(t *testing.T) {
	t.Parallel()

	provider := &fakeSearchProvider{
		ready: true,
		results: []domain.SymbolMatch{
			{Symbol: "AAPL", Name: "Apple Inc", Region: "United States", Currency: "USD"},
		},
	}
	svc := NewSearchService(testTracer, provider, cache.New())

	matches, err := svc.Search(context.Background(), " apple ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Symbol != "AAPL" {
		t.Fatalf("unexpected matches: %+v", matches)
	}
}

func TestSearchCachesByUppercasedQuery(t *testing.T) {
	t.Parallel()

	provider := &fakeSearchProvider{ready: true, results: []domain.SymbolMatch{{Symbol: "AAPL", Name: "Apple Inc"}}}
	svc := NewSearchService(testTracer, provider, cache.New())

	if _, err := svc.Search(context.Background(), "apple"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Search(context.Background(), "APPLE"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("case variants should share one cache entry, got %d calls", provider.calls)
	}
}

func TestSearchRejectsBadLength(t *testing.T) {
	t.Parallel()

	svc := NewSearchService(testTracer, &fakeSearchProvider{ready: true}, cache.New())

	if _, err := svc.Search(context.Background(), "   "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("blank query should be a client error, got %v", err)
	}
	if _, err := svc.Search(context.Background(), strings.Repeat("a", 21)); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("21-char query should be a client error, got %v", err)
	}
	if _, err := svc.Search(context.Background(), strings.Repeat("a", 20)); err != nil {
		t.Fatalf("20-char query should pass validation, got %v", err)
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	t.Parallel()

	provider := &fakeSearchProvider{ready: true, err: fmt.Errorf("gateway: %w", domain.ErrUpstream)}
	svc := NewSearchService(testTracer, provider, cache.New())

	if _, err := svc.Search(context.Background(), "apple"); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestSearchProviderNotConfigured(t *testing.T) {
	t.Parallel()

	svc := NewSearchService(testTracer, &fakeSearchProvider{}, cache.New())
	if _, err := svc.Search(context.Background(), "apple"); !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("expected not-configured error, got %v", err)
	}
}
