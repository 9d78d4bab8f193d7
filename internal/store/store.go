// Package store defines the datastore abstraction for the reference price
// database and the web price cache. Business logic depends on the Store
// interface, never on a concrete backend.
package store

import (
	"context"
	"time"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// ErrNotFound is returned when a key has no price or cache entry. It is the
// domain sentinel so callers outside this package can match it without
// importing store.
var ErrNotFound = domain.ErrNotFound

// PriceQuery defines optional filters for listing price records.
type PriceQuery struct {
	// Search matches brand or model case-insensitively.
	Search   string
	Brand    *string
	Category *string
	Limit    int // default 50
	Offset   int
	OrderBy  string // "key", "price", "last_updated"
}

// Store defines all data access operations.
type Store interface {
	// Price database
	GetPrice(ctx context.Context, key string) (*domain.PriceRecord, error)
	UpsertPrice(ctx context.Context, rec *domain.PriceRecord) error
	DeletePrice(ctx context.Context, key string) error
	ListPrices(ctx context.Context, q *PriceQuery) ([]domain.PriceRecord, int, error)
	PriceStats(ctx context.Context) (*domain.PriceStats, error)

	// Price cache
	GetCachedPrice(ctx context.Context, key string) (*domain.CachedPrice, error)
	SetCachedPrice(ctx context.Context, entry *domain.CachedPrice) error
	// EvictCachedPrice removes the entry for key only if its CachedAt still
	// equals cachedAt, so a fresh entry written after the caller's read
	// survives. It reports whether an entry was removed.
	EvictCachedPrice(ctx context.Context, key string, cachedAt time.Time) (bool, error)
	// PurgeCachedPrices removes entries cached strictly before cutoff and
	// returns how many were removed.
	PurgeCachedPrices(ctx context.Context, cutoff time.Time) (int, error)
	ClearCachedPrices(ctx context.Context) (int, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close()
}
