package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/metrics"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/store"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

func TestUpsertPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      PriceInput
		wantErr string
		check   func(t *testing.T, rec *domain.PriceRecord)
	}{
		{
			name: "normalizes key and fills defaults",
			in:   PriceInput{Brand: " Apple ", Model: "iPhone 13-Pro", Price: 45000, Category: "phone"},
			check: func(t *testing.T, rec *domain.PriceRecord) {
				t.Helper()
				assert.Equal(t, "apple_iphone_13_pro", rec.Key)
				assert.Equal(t, "Apple", rec.Brand)
				assert.Equal(t, "EGP", rec.Currency)
				assert.Equal(t, "Manual", rec.Source)
				assert.Equal(t, "phone", rec.Category)
				assert.Equal(t, fixedNow, rec.LastUpdated)
			},
		},
		{
			name: "keeps explicit currency and source",
			in:   PriceInput{Brand: "Dell", Model: "XPS 13", Price: 1200, Currency: "USD", Source: "B.TECH"},
			check: func(t *testing.T, rec *domain.PriceRecord) {
				t.Helper()
				assert.Equal(t, "USD", rec.Currency)
				assert.Equal(t, "B.TECH", rec.Source)
			},
		},
		{
			name:    "missing model",
			in:      PriceInput{Brand: "Apple", Price: 100},
			wantErr: "brand and model are required",
		},
		{
			name:    "non-positive price",
			in:      PriceInput{Brand: "Apple", Model: "iPhone 13", Price: 0},
			wantErr: "price must be greater than zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng, ms := newTestEngine(t)
			if tt.wantErr == "" {
				ms.EXPECT().UpsertPrice(mock.Anything, mock.Anything).Return(nil)
			}

			rec, err := eng.UpsertPrice(context.Background(), tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPrice)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, rec)
		})
	}
}

func TestUpsertPrice_StoreError(t *testing.T) {
	t.Parallel()

	eng, ms := newTestEngine(t)
	ms.EXPECT().UpsertPrice(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := eng.UpsertPrice(context.Background(), PriceInput{Brand: "Apple", Model: "iPad", Price: 15000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving price apple_ipad")
}

func TestDeletePrice(t *testing.T) {
	t.Parallel()

	t.Run("deletes by normalized key", func(t *testing.T) {
		t.Parallel()

		eng, ms := newTestEngine(t)
		ms.EXPECT().DeletePrice(mock.Anything, "samsung_galaxy_s21").Return(nil)
		require.NoError(t, eng.DeletePrice(context.Background(), "Samsung", "Galaxy S21"))
	})

	t.Run("missing entry", func(t *testing.T) {
		t.Parallel()

		eng, ms := newTestEngine(t)
		ms.EXPECT().DeletePrice(mock.Anything, "nokia_3310").Return(store.ErrNotFound)
		err := eng.DeletePrice(context.Background(), "Nokia", "3310")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestListPrices(t *testing.T) {
	t.Parallel()

	eng, ms := newTestEngine(t)
	q := &store.PriceQuery{Search: "iphone", Limit: 10}
	ms.EXPECT().ListPrices(mock.Anything, q).Return([]domain.PriceRecord{*iphoneRecord()}, 1, nil)

	records, total, err := eng.ListPrices(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, records, 1)

	eng2, ms2 := newTestEngine(t)
	ms2.EXPECT().ListPrices(mock.Anything, mock.Anything).Return(nil, 0, errors.New("boom"))
	_, _, err = eng2.ListPrices(context.Background(), &store.PriceQuery{})
	assert.ErrorContains(t, err, "listing prices")
}

func TestPriceStats(t *testing.T) {
	t.Parallel()

	eng, ms := newTestEngine(t)
	ms.EXPECT().PriceStats(mock.Anything).Return(&domain.PriceStats{
		TotalProducts: 2,
		ByCategory:    map[string]int{"phone": 2},
		ByBrand:       map[string]int{"Apple": 1, "Samsung": 1},
	}, nil)

	stats, err := eng.PriceStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.ByBrand["Samsung"])
}

func TestPurgeExpiredCache(t *testing.T) {
	eng, ms := newTestEngine(t, WithCacheTTL(72*time.Hour))
	ms.EXPECT().PurgeCachedPrices(mock.Anything, fixedNow.Add(-72*time.Hour)).Return(3, nil)

	before := ptestutil.ToFloat64(metrics.CacheEvictionsTotal)

	n, err := eng.PurgeExpiredCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, before+3, ptestutil.ToFloat64(metrics.CacheEvictionsTotal))
	assert.Equal(t, float64(fixedNow.Unix()), ptestutil.ToFloat64(metrics.CachePurgeLastRunTimestamp))
}

func TestPurgeExpiredCache_Error(t *testing.T) {
	t.Parallel()

	eng, ms := newTestEngine(t)
	ms.EXPECT().PurgeCachedPrices(mock.Anything, mock.Anything).Return(0, errors.New("locked"))

	_, err := eng.PurgeExpiredCache(context.Background())
	assert.ErrorContains(t, err, "purging expired cache entries")
}

func TestClearCache(t *testing.T) {
	t.Parallel()

	eng, ms := newTestEngine(t)
	ms.EXPECT().ClearCachedPrices(mock.Anything).Return(5, nil)

	n, err := eng.ClearCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestReady(t *testing.T) {
	t.Parallel()

	eng, ms := newTestEngine(t)
	ms.EXPECT().Ping(mock.Anything).Return(nil).Once()
	ms.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()

	assert.NoError(t, eng.Ready(context.Background()))
	assert.Error(t, eng.Ready(context.Background()))
}
