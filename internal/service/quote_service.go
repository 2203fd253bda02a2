package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tayara1972/apexview-backend/internal/cache"
	"github.com/tayara1972/apexview-backend/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MaxBatchSymbols caps how many distinct symbols one /quotes request may
// carry. Excess rejects the request rather than truncating it.
const MaxBatchSymbols = 100

// QuoteProvider is the upstream quote API behind the aggregator.
type QuoteProvider interface {
	Name() string
	Ready() bool
	Quote(ctx context.Context, symbol string) (*domain.Quote, error)
}

// QuoteService fans per-symbol quote fetches out to the provider, merging
// cache hits, fresh values, and per-symbol failures into one batch.
type QuoteService struct {
	tracer   trace.Tracer
	provider QuoteProvider
	store    *cache.Store
}

func NewQuoteService(tracer trace.Tracer, provider QuoteProvider, store *cache.Store) *QuoteService {
	return &QuoteService{
		tracer:   tracer,
		provider: provider,
		store:    store,
	}
}

// ProviderName identifies the quote provider in response payloads.
func (s *QuoteService) ProviderName() string { return s.provider.Name() }

// GetQuotes resolves a comma-separated symbol list into a complete batch:
// exactly one entry per distinct valid symbol, no matter how individual
// provider calls fare. A symbol whose fetch fails gets a placeholder quote
// with absent numerics so the rest of the batch still lands.
func (s *QuoteService) GetQuotes(ctx context.Context, rawSymbols string) (*domain.QuoteBatch, error) {
	ctx, span := s.tracer.Start(ctx, "quote-service.get-quotes")
	defer span.End()

	valid, invalid := parseSymbolList(rawSymbols)
	span.SetAttributes(attribute.Int("symbols.valid", len(valid)), attribute.Int("symbols.invalid", len(invalid)))

	if len(valid)+len(invalid) == 0 {
		return nil, fmt.Errorf("symbols parameter is required: %w", domain.ErrInvalidInput)
	}
	if len(valid)+len(invalid) > MaxBatchSymbols {
		return nil, fmt.Errorf("too many symbols (max %d): %w", MaxBatchSymbols, domain.ErrInvalidInput)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no valid symbols in request: %w", domain.ErrInvalidInput)
	}
	if !s.provider.Ready() {
		return nil, domain.ErrNotConfigured
	}

	batch := &domain.QuoteBatch{
		Source:         "live",
		Data:           make(map[string]domain.Quote, len(valid)),
		InvalidSymbols: invalid,
	}

	// Serve what the cache can. The cache key uses the mapped provider
	// symbol, so aliases like BTC and BTC-USD share one entry; the client
	// symbol is substituted back into every copy that leaves here.
	type fetchJob struct {
		client string
		mapped string
		key    string
	}
	var misses []fetchJob

	for _, sym := range valid {
		mapped := domain.MapSymbol(sym)
		key := "quote:" + mapped
		if v, ok := s.store.Get(key); ok {
			if q, ok := v.(domain.Quote); ok {
				batch.Data[sym] = q.WithSymbol(sym)
				continue
			}
		}
		misses = append(misses, fetchJob{client: sym, mapped: mapped, key: key})
	}

	// All misses go out concurrently; the join below is the only place one
	// slow symbol can delay the others.
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, job := range misses {
		wg.Add(1)
		go func(job fetchJob) {
			defer wg.Done()

			q, err := s.provider.Quote(ctx, job.mapped)
			if err != nil {
				mu.Lock()
				batch.Data[job.client] = domain.Quote{Symbol: job.client, Provider: s.provider.Name()}
				mu.Unlock()
				return
			}

			s.store.Set(job.key, *q)
			mu.Lock()
			batch.Data[job.client] = q.WithSymbol(job.client)
			mu.Unlock()
		}(job)
	}
	wg.Wait()

	return batch, nil
}

// parseSymbolList splits, normalizes, and case-insensitively dedupes a raw
// comma-separated symbol list, keeping first-seen order and separating the
// syntactically malformed entries out rather than dropping them silently.
func parseSymbolList(raw string) (valid, invalid []string) {
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		sym := domain.NormalizeSymbol(part)
		if sym == "" {
			continue
		}
		if _, dup := seen[sym]; dup {
			continue
		}
		seen[sym] = struct{}{}
		if domain.ValidSymbol(sym) {
			valid = append(valid, sym)
		} else {
			invalid = append(invalid, sym)
		}
	}
	return valid, invalid
}
