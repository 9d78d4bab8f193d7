package pricing_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing/mocks"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

func TestManualResolver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		price  *float64
		wantOK bool
	}{
		{"no price", nil, false},
		{"zero", price(0), false},
		{"negative", price(-5), false},
		{"positive", price(1200), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ref, ok, err := pricing.ManualResolver{}.Resolve(context.Background(), pricing.Query{ReferencePrice: tt.price})
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, *tt.price, ref.Price)
				assert.Equal(t, domain.SourceManual, ref.Tier)
			}
		})
	}
}

func TestDatabaseResolver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rec     *domain.PriceRecord
		err     error
		wantOK  bool
		wantErr bool
	}{
		{"hit", &domain.PriceRecord{Price: 30000, Currency: "EGP", Source: "seed"}, nil, true, false},
		{"not found", nil, domain.ErrNotFound, false, false},
		{"non-positive price", &domain.PriceRecord{Price: 0}, nil, false, false},
		{"backend failure", nil, errors.New("connection reset"), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			book := mocks.NewMockPriceBook(t)
			book.EXPECT().GetPrice(context.Background(), "apple_iphone_13").Return(tt.rec, tt.err)

			ref, ok, err := pricing.DatabaseResolver{Book: book}.Resolve(
				context.Background(), pricing.Query{Brand: "Apple", Model: "iPhone 13"},
			)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "looking up price database")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, domain.SourceDatabase, ref.Tier)
				assert.Equal(t, "EGP", ref.Currency)
				assert.Equal(t, "seed", ref.Origin)
				assert.Nil(t, ref.Market)
			}
		})
	}
}

func TestCacheResolver_EvictionFailure(t *testing.T) {
	t.Parallel()

	cache := mocks.NewMockPriceCache(t)
	key := pricing.CacheKey("Apple", "iPhone 13", "phone")
	cachedAt := fixedNow.Add(-8 * 24 * time.Hour)
	cache.EXPECT().GetCachedPrice(context.Background(), key).Return(&domain.CachedPrice{
		Key:      key,
		Quote:    domain.PriceQuote{Price: 25000},
		CachedAt: cachedAt,
	}, nil)
	cache.EXPECT().EvictCachedPrice(context.Background(), key, cachedAt).Return(false, errors.New("disk full"))

	r := pricing.CacheResolver{Cache: cache, Now: func() time.Time { return fixedNow }}
	_, ok, err := r.Resolve(context.Background(), pricing.Query{Brand: "Apple", Model: "iPhone 13", Category: "phone"})
	require.Error(t, err)
	assert.False(t, ok)
}

func TestCacheResolver_EvictsOnlyTheEntryRead(t *testing.T) {
	t.Parallel()

	cache := mocks.NewMockPriceCache(t)
	key := pricing.CacheKey("Apple", "iPhone 13", "")
	cachedAt := fixedNow.Add(-8 * 24 * time.Hour)
	cache.EXPECT().GetCachedPrice(context.Background(), key).Return(&domain.CachedPrice{
		Key:      key,
		Quote:    domain.PriceQuote{Price: 25000},
		CachedAt: cachedAt,
	}, nil)
	// A fresh entry replaced the stale one after the read; nothing is removed.
	cache.EXPECT().EvictCachedPrice(context.Background(), key, cachedAt).Return(false, nil)

	r := pricing.CacheResolver{Cache: cache, Now: func() time.Time { return fixedNow }}
	_, ok, err := r.Resolve(context.Background(), pricing.Query{Brand: "Apple", Model: "iPhone 13"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolvers_KeylessNameMisses(t *testing.T) {
	t.Parallel()

	// The mocks fail the test if the backends are consulted.
	q := pricing.Query{Brand: "!!", Model: "--", Category: "phone"}

	_, ok, err := pricing.DatabaseResolver{Book: mocks.NewMockPriceBook(t)}.Resolve(context.Background(), q)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = pricing.CacheResolver{Cache: mocks.NewMockPriceCache(t)}.Resolve(context.Background(), q)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExpired(t *testing.T) {
	t.Parallel()

	ttl := 7 * 24 * time.Hour
	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"fresh", time.Hour, false},
		{"exactly ttl", ttl, false},
		{"just past ttl", ttl + time.Second, true},
		{"future timestamp", -time.Hour, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pricing.Expired(fixedNow.Add(-tt.age), fixedNow, ttl))
		})
	}
}

func TestWebSearchResolver(t *testing.T) {
	t.Parallel()

	market := &domain.MarketStats{TotalResults: 4}
	tests := []struct {
		name    string
		quote   *domain.PriceQuote
		err     error
		wantOK  bool
		wantErr bool
	}{
		{"hit", &domain.PriceQuote{Price: 24999, Currency: "EGP", Source: "Noon", Market: market}, nil, true, false},
		{"no results", nil, fmt.Errorf("search: %w", domain.ErrNotFound), false, false},
		{"nil quote", nil, nil, false, false},
		{"zero price", &domain.PriceQuote{Price: 0}, nil, false, false},
		{"api failure", nil, errors.New("502 bad gateway"), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := mocks.NewMockMarketSearcher(t)
			s.EXPECT().SearchPrice(context.Background(), "Apple", "iPhone 13", "phone").Return(tt.quote, tt.err)

			r := pricing.WebSearchResolver{Searcher: s}
			assert.True(t, r.CacheWorthy())

			ref, ok, err := r.Resolve(context.Background(), pricing.Query{Brand: "Apple", Model: "iPhone 13", Category: "phone"})
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, errors.Is(err, domain.ErrNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, domain.SourceWebSearch, ref.Tier)
				assert.Equal(t, "Noon", ref.Origin)
				assert.Same(t, market, ref.Market)
			}
		})
	}
}
