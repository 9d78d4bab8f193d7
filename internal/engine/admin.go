package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/metrics"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/store"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// ErrInvalidPrice is returned for price database entries that cannot be
// stored.
var ErrInvalidPrice = errors.New("invalid price entry")

// PriceInput is a price database entry to add or replace.
type PriceInput struct {
	Brand    string
	Model    string
	Price    float64
	Currency string
	Source   string
	Category string
}

// ListPrices returns one page of price database entries and the total
// number of matches.
func (eng *Engine) ListPrices(ctx context.Context, q *store.PriceQuery) ([]domain.PriceRecord, int, error) {
	records, total, err := eng.store.ListPrices(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing prices: %w", err)
	}
	return records, total, nil
}

// UpsertPrice adds or replaces a price database entry under the normalized
// brand_model key.
func (eng *Engine) UpsertPrice(ctx context.Context, in PriceInput) (*domain.PriceRecord, error) {
	brand := strings.TrimSpace(in.Brand)
	model := strings.TrimSpace(in.Model)
	if brand == "" || model == "" {
		return nil, fmt.Errorf("%w: brand and model are required", ErrInvalidPrice)
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrInvalidPrice)
	}

	rec := &domain.PriceRecord{
		Key:         pricing.ProductKey(brand, model),
		Brand:       brand,
		Model:       model,
		Price:       in.Price,
		Currency:    orDefault(in.Currency, eng.currency),
		Source:      orDefault(in.Source, "Manual"),
		Category:    strings.TrimSpace(in.Category),
		LastUpdated: eng.now().UTC(),
	}
	if err := eng.store.UpsertPrice(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving price %s: %w", rec.Key, err)
	}
	eng.log.Info("price saved", "key", rec.Key, "price", rec.Price, "currency", rec.Currency)
	return rec, nil
}

// DeletePrice removes a price database entry. It returns an error wrapping
// store.ErrNotFound when the entry does not exist.
func (eng *Engine) DeletePrice(ctx context.Context, brand, model string) error {
	key := pricing.ProductKey(brand, model)
	if err := eng.store.DeletePrice(ctx, key); err != nil {
		return fmt.Errorf("deleting price %s: %w", key, err)
	}
	eng.log.Info("price deleted", "key", key)
	return nil
}

// PriceStats summarizes the price database.
func (eng *Engine) PriceStats(ctx context.Context) (*domain.PriceStats, error) {
	stats, err := eng.store.PriceStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing price stats: %w", err)
	}
	return stats, nil
}

// PurgeExpiredCache removes cache entries older than the cache TTL and
// returns how many were removed.
func (eng *Engine) PurgeExpiredCache(ctx context.Context) (int, error) {
	now := eng.now()
	n, err := eng.store.PurgeCachedPrices(ctx, now.Add(-eng.cacheTTL))
	if err != nil {
		return 0, fmt.Errorf("purging expired cache entries: %w", err)
	}
	metrics.CacheEvictionsTotal.Add(float64(n))
	metrics.CachePurgeLastRunTimestamp.Set(float64(now.Unix()))
	eng.log.Info("expired cache entries purged", "removed", n, "ttl", eng.cacheTTL)
	return n, nil
}

// ClearCache removes every cache entry and returns how many were removed.
func (eng *Engine) ClearCache(ctx context.Context) (int, error) {
	n, err := eng.store.ClearCachedPrices(ctx)
	if err != nil {
		return 0, fmt.Errorf("clearing cache: %w", err)
	}
	eng.log.Info("price cache cleared", "removed", n)
	return n, nil
}

// Ready reports whether the store is reachable.
func (eng *Engine) Ready(ctx context.Context) error {
	return eng.store.Ping(ctx)
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
