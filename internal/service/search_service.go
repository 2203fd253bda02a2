package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tayara1972/apexview-backend/internal/cache"
	"github.com/tayara1972/apexview-backend/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Length bounds for a search query after trimming.
const (
	minQueryLen = 1
	maxQueryLen = 20
)

// SearchProvider is the upstream symbol-search API.
type SearchProvider interface {
	Name() string
	Ready() bool
	Search(ctx context.Context, query string) ([]domain.SymbolMatch, error)
}

// SearchService proxies free-text symbol searches through the shared TTL
// cache.
type SearchService struct {
	tracer   trace.Tracer
	provider SearchProvider
	store    *cache.Store
}

func NewSearchService(tracer trace.Tracer, provider SearchProvider, store *cache.Store) *SearchService {
	return &SearchService{
		tracer:   tracer,
		provider: provider,
		store:    store,
	}
}

// ProviderName identifies the search provider in response payloads.
func (s *SearchService) ProviderName() string { return s.provider.Name() }

// Search resolves a free-text query into normalized symbol matches.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.SymbolMatch, error) {
	ctx, span := s.tracer.Start(ctx, "search-service.search")
	defer span.End()

	query = strings.TrimSpace(query)
	span.SetAttributes(attribute.Int("query.len", len(query)))

	if len(query) < minQueryLen || len(query) > maxQueryLen {
		return nil, fmt.Errorf("query must be %d-%d characters: %w", minQueryLen, maxQueryLen, domain.ErrInvalidInput)
	}

	key := "search:" + strings.ToUpper(query)
	if v, ok := s.store.Get(key); ok {
		if matches, ok := v.([]domain.SymbolMatch); ok {
			return matches, nil
		}
	}

	if !s.provider.Ready() {
		return nil, domain.ErrNotConfigured
	}

	matches, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	s.store.Set(key, matches)
	return matches, nil
}
