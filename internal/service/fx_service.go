package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tayara1972/apexview-backend/internal/cache"
	"github.com/tayara1972/apexview-backend/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// FxProvider is the upstream exchange-rate API.
type FxProvider interface {
	Name() string
	Ready() bool
	ExchangeRate(ctx context.Context, from, to string) (*domain.FxRate, error)
}

// FxService answers pairwise exchange-rate lookups with a direct provider
// call behind the shared TTL cache.
type FxService struct {
	tracer   trace.Tracer
	provider FxProvider
	store    *cache.Store
}

func NewFxService(tracer trace.Tracer, provider FxProvider, store *cache.Store) *FxService {
	return &FxService{
		tracer:   tracer,
		provider: provider,
		store:    store,
	}
}

// ProviderName identifies the FX provider in response payloads.
func (s *FxService) ProviderName() string { return s.provider.Name() }

// GetRate returns the exchange rate between two currency codes. The
// identity pair short-circuits to 1.0 without touching the provider or the
// cache, whatever state either is in.
func (s *FxService) GetRate(ctx context.Context, from, to string) (*domain.FxRate, error) {
	ctx, span := s.tracer.Start(ctx, "fx-service.get-rate")
	defer span.End()

	from = domain.NormalizeSymbol(from)
	to = domain.NormalizeSymbol(to)
	span.SetAttributes(attribute.String("from", from), attribute.String("to", to))

	if from == "" || to == "" {
		return nil, fmt.Errorf("from and to parameters are required: %w", domain.ErrInvalidInput)
	}
	if !domain.ValidCurrency(from) {
		return nil, fmt.Errorf("unsupported currency %q: %w", from, domain.ErrInvalidInput)
	}
	if !domain.ValidCurrency(to) {
		return nil, fmt.Errorf("unsupported currency %q: %w", to, domain.ErrInvalidInput)
	}

	if from == to {
		return &domain.FxRate{
			FromCurrency: from,
			ToCurrency:   to,
			Rate:         1.0,
			Provider:     "identity",
			LastUpdated:  time.Now().UTC(),
		}, nil
	}

	key := "fx:" + from + "->" + to
	if v, ok := s.store.Get(key); ok {
		if rate, ok := v.(domain.FxRate); ok {
			return &rate, nil
		}
	}

	if !s.provider.Ready() {
		return nil, domain.ErrNotConfigured
	}

	rate, err := s.provider.ExchangeRate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	s.store.Set(key, *rate)
	return rate, nil
}
