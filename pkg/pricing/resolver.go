package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// DefaultCacheTTL is how long a cached web price stays fresh.
const DefaultCacheTTL = 7 * 24 * time.Hour

// PriceBook looks up reference prices in the local price database.
// Implementations return domain.ErrNotFound for unknown keys.
type PriceBook interface {
	GetPrice(ctx context.Context, key string) (*domain.PriceRecord, error)
}

// PriceCache stores web search results. Implementations return
// domain.ErrNotFound for unknown keys.
type PriceCache interface {
	GetCachedPrice(ctx context.Context, key string) (*domain.CachedPrice, error)
	SetCachedPrice(ctx context.Context, entry *domain.CachedPrice) error
	// EvictCachedPrice removes the entry for key only while it is still the
	// one cached at cachedAt, and reports whether it was removed.
	EvictCachedPrice(ctx context.Context, key string, cachedAt time.Time) (bool, error)
}

// MarketSearcher finds a reference price on the open market. Implementations
// return an error wrapping domain.ErrNotFound when nothing usable was found.
type MarketSearcher interface {
	SearchPrice(ctx context.Context, brand, model, category string) (*domain.PriceQuote, error)
}

// Query identifies the product whose reference price is needed.
type Query struct {
	Brand          string
	Model          string
	Category       string
	ReferencePrice *float64
}

// Reference is a resolved reference price.
type Reference struct {
	Price    float64
	Currency string
	// Tier is the resolver that produced the price.
	Tier string
	// Origin describes the upstream source, e.g. the store name.
	Origin string
	Market *domain.MarketStats
}

// Resolver is one tier of the reference price fallback chain. A miss is
// reported as ok == false with a nil error.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context, q Query) (ref Reference, ok bool, err error)
	// CacheWorthy reports whether hits from this tier are written back to
	// the price cache.
	CacheWorthy() bool
}

// ManualResolver uses a caller supplied reference price.
type ManualResolver struct{}

// Name implements Resolver.
func (ManualResolver) Name() string { return domain.SourceManual }

// CacheWorthy implements Resolver.
func (ManualResolver) CacheWorthy() bool { return false }

// Resolve implements Resolver.
func (ManualResolver) Resolve(_ context.Context, q Query) (Reference, bool, error) {
	if q.ReferencePrice == nil || *q.ReferencePrice <= 0 {
		return Reference{}, false, nil
	}
	return Reference{Price: *q.ReferencePrice, Tier: domain.SourceManual, Origin: "user provided"}, true, nil
}

// DatabaseResolver looks the product up in the price database.
type DatabaseResolver struct {
	Book PriceBook
}

// Name implements Resolver.
func (DatabaseResolver) Name() string { return domain.SourceDatabase }

// CacheWorthy implements Resolver.
func (DatabaseResolver) CacheWorthy() bool { return false }

// Resolve implements Resolver.
func (r DatabaseResolver) Resolve(ctx context.Context, q Query) (Reference, bool, error) {
	key := ProductKey(q.Brand, q.Model)
	if key == "" {
		return Reference{}, false, nil
	}
	rec, err := r.Book.GetPrice(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return Reference{}, false, nil
	}
	if err != nil {
		return Reference{}, false, fmt.Errorf("looking up price database: %w", err)
	}
	if rec.Price <= 0 {
		return Reference{}, false, nil
	}
	return Reference{
		Price:    rec.Price,
		Currency: rec.Currency,
		Tier:     domain.SourceDatabase,
		Origin:   rec.Source,
	}, true, nil
}

// CacheResolver serves fresh entries from the price cache and evicts
// expired ones.
type CacheResolver struct {
	Cache PriceCache
	TTL   time.Duration
	Now   func() time.Time
}

// Name implements Resolver.
func (CacheResolver) Name() string { return domain.SourceCache }

// CacheWorthy implements Resolver.
func (CacheResolver) CacheWorthy() bool { return false }

// Resolve implements Resolver.
func (r CacheResolver) Resolve(ctx context.Context, q Query) (Reference, bool, error) {
	key := CacheKey(q.Brand, q.Model, q.Category)
	if key == "" {
		return Reference{}, false, nil
	}
	entry, err := r.Cache.GetCachedPrice(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return Reference{}, false, nil
	}
	if err != nil {
		return Reference{}, false, fmt.Errorf("reading price cache: %w", err)
	}

	if Expired(entry.CachedAt, r.now(), r.ttl()) {
		if _, err := r.Cache.EvictCachedPrice(ctx, key, entry.CachedAt); err != nil {
			return Reference{}, false, fmt.Errorf("evicting expired cache entry %s: %w", key, err)
		}
		return Reference{}, false, nil
	}
	if entry.Quote.Price <= 0 {
		return Reference{}, false, nil
	}

	return Reference{
		Price:    entry.Quote.Price,
		Currency: entry.Quote.Currency,
		Tier:     domain.SourceCache,
		Origin:   entry.Quote.Source,
		Market:   entry.Quote.Market,
	}, true, nil
}

func (r CacheResolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r CacheResolver) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return DefaultCacheTTL
}

// Expired reports whether an entry cached at cachedAt is older than ttl.
func Expired(cachedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(cachedAt) > ttl
}

// WebSearchResolver asks the market searcher for a price. Its hits are
// cache-worthy.
type WebSearchResolver struct {
	Searcher MarketSearcher
}

// Name implements Resolver.
func (WebSearchResolver) Name() string { return domain.SourceWebSearch }

// CacheWorthy implements Resolver.
func (WebSearchResolver) CacheWorthy() bool { return true }

// Resolve implements Resolver.
func (r WebSearchResolver) Resolve(ctx context.Context, q Query) (Reference, bool, error) {
	quote, err := r.Searcher.SearchPrice(ctx, q.Brand, q.Model, q.Category)
	if errors.Is(err, domain.ErrNotFound) {
		return Reference{}, false, nil
	}
	if err != nil {
		return Reference{}, false, fmt.Errorf("searching market price: %w", err)
	}
	if quote == nil || quote.Price <= 0 {
		return Reference{}, false, nil
	}
	return Reference{
		Price:    quote.Price,
		Currency: quote.Currency,
		Tier:     domain.SourceWebSearch,
		Origin:   quote.Source,
		Market:   quote.Market,
	}, true, nil
}
