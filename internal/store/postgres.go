package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

const defaultPoolSize = 10

const unknownGroup = "Unknown"

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a PostgresStore with connection pooling and
// verifies the connection.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// GetPrice returns the price record for key.
func (s *PostgresStore) GetPrice(ctx context.Context, key string) (*domain.PriceRecord, error) {
	row := s.pool.QueryRow(ctx, basePricesSelect+" WHERE key = $1", key)

	rec, err := scanPrice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("price %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting price %q: %w", key, err)
	}
	return rec, nil
}

// UpsertPrice inserts or replaces a price record by key. A zero
// LastUpdated is stamped with the current time.
func (s *PostgresStore) UpsertPrice(ctx context.Context, rec *domain.PriceRecord) error {
	if rec.LastUpdated.IsZero() {
		rec.LastUpdated = time.Now().UTC()
	}

	args := pgx.NamedArgs{
		"key":          rec.Key,
		"brand":        rec.Brand,
		"model":        rec.Model,
		"price":        rec.Price,
		"currency":     rec.Currency,
		"source":       rec.Source,
		"category":     rec.Category,
		"last_updated": rec.LastUpdated,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO prices (key, brand, model, price, currency, source, category, last_updated)
		VALUES (@key, @brand, @model, @price, @currency, @source, NULLIF(@category, ''), @last_updated)
		ON CONFLICT (key) DO UPDATE SET
			brand        = EXCLUDED.brand,
			model        = EXCLUDED.model,
			price        = EXCLUDED.price,
			currency     = EXCLUDED.currency,
			source       = EXCLUDED.source,
			category     = EXCLUDED.category,
			last_updated = EXCLUDED.last_updated`,
		args,
	)
	if err != nil {
		return fmt.Errorf("upserting price %q: %w", rec.Key, err)
	}
	return nil
}

// DeletePrice removes a price record.
func (s *PostgresStore) DeletePrice(ctx context.Context, key string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM prices WHERE key = $1", key)
	if err != nil {
		return fmt.Errorf("deleting price %q: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("price %q: %w", key, ErrNotFound)
	}
	return nil
}

// ListPrices returns a page of price records and the total match count.
func (s *PostgresStore) ListPrices(ctx context.Context, q *PriceQuery) ([]domain.PriceRecord, int, error) {
	if q == nil {
		q = &PriceQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting prices: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing prices: %w", err)
	}
	defer rows.Close()

	records := make([]domain.PriceRecord, 0)
	for rows.Next() {
		rec, err := scanPrice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning price: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating prices: %w", err)
	}

	return records, total, nil
}

// PriceStats counts records by category and brand.
func (s *PostgresStore) PriceStats(ctx context.Context) (*domain.PriceStats, error) {
	stats := &domain.PriceStats{
		ByCategory: make(map[string]int),
		ByBrand:    make(map[string]int),
	}

	var last *time.Time
	if err := s.pool.QueryRow(ctx,
		"SELECT COUNT(*), MAX(last_updated) FROM prices",
	).Scan(&stats.TotalProducts, &last); err != nil {
		return nil, fmt.Errorf("counting prices: %w", err)
	}
	stats.LastUpdated = last

	if err := s.groupCount(ctx, "COALESCE(NULLIF(category, ''), $1)", stats.ByCategory); err != nil {
		return nil, err
	}
	if err := s.groupCount(ctx, "COALESCE(NULLIF(brand, ''), $1)", stats.ByBrand); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *PostgresStore) groupCount(ctx context.Context, expr string, into map[string]int) error {
	rows, err := s.pool.Query(ctx,
		fmt.Sprintf("SELECT %s AS grp, COUNT(*) FROM prices GROUP BY grp", expr),
		unknownGroup,
	)
	if err != nil {
		return fmt.Errorf("grouping prices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name  string
			count int
		)
		if err := rows.Scan(&name, &count); err != nil {
			return fmt.Errorf("scanning price group: %w", err)
		}
		into[name] = count
	}
	return rows.Err()
}

// GetCachedPrice returns the cache entry for key regardless of its age.
// Expiry is decided by the caller.
func (s *PostgresStore) GetCachedPrice(ctx context.Context, key string) (*domain.CachedPrice, error) {
	var (
		entry domain.CachedPrice
		quote []byte
	)
	err := s.pool.QueryRow(ctx, `
		SELECT key, brand, model, COALESCE(category, ''), quote, cached_at
		FROM price_cache WHERE key = $1`, key,
	).Scan(&entry.Key, &entry.Brand, &entry.Model, &entry.Category, &quote, &entry.CachedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("cached price %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting cached price %q: %w", key, err)
	}

	if err := json.Unmarshal(quote, &entry.Quote); err != nil {
		return nil, fmt.Errorf("decoding cached quote %q: %w", key, err)
	}
	return &entry, nil
}

// SetCachedPrice writes or replaces a cache entry.
func (s *PostgresStore) SetCachedPrice(ctx context.Context, entry *domain.CachedPrice) error {
	if entry.CachedAt.IsZero() {
		entry.CachedAt = time.Now().UTC()
	}

	quote, err := json.Marshal(entry.Quote)
	if err != nil {
		return fmt.Errorf("encoding cached quote %q: %w", entry.Key, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO price_cache (key, brand, model, category, quote, cached_at)
		VALUES (@key, @brand, @model, NULLIF(@category, ''), @quote, @cached_at)
		ON CONFLICT (key) DO UPDATE SET
			brand     = EXCLUDED.brand,
			model     = EXCLUDED.model,
			category  = EXCLUDED.category,
			quote     = EXCLUDED.quote,
			cached_at = EXCLUDED.cached_at`,
		pgx.NamedArgs{
			"key":       entry.Key,
			"brand":     entry.Brand,
			"model":     entry.Model,
			"category":  entry.Category,
			"quote":     quote,
			"cached_at": entry.CachedAt,
		},
	)
	if err != nil {
		return fmt.Errorf("caching price %q: %w", entry.Key, err)
	}
	return nil
}

// EvictCachedPrice removes the entry for key if it is still the one cached
// at cachedAt.
func (s *PostgresStore) EvictCachedPrice(ctx context.Context, key string, cachedAt time.Time) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		"DELETE FROM price_cache WHERE key = $1 AND cached_at = $2", key, cachedAt)
	if err != nil {
		return false, fmt.Errorf("evicting cached price %q: %w", key, err)
	}
	return tag.RowsAffected() > 0, nil
}

// PurgeCachedPrices removes entries cached before cutoff.
func (s *PostgresStore) PurgeCachedPrices(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, "DELETE FROM price_cache WHERE cached_at < $1", cutoff)
	if err != nil {
		return 0, fmt.Errorf("purging price cache: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ClearCachedPrices removes every cache entry.
func (s *PostgresStore) ClearCachedPrices(ctx context.Context) (int, error) {
	tag, err := s.pool.Exec(ctx, "DELETE FROM price_cache")
	if err != nil {
		return 0, fmt.Errorf("clearing price cache: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanPrice(row pgx.Row) (*domain.PriceRecord, error) {
	var rec domain.PriceRecord
	if err := row.Scan(
		&rec.Key, &rec.Brand, &rec.Model, &rec.Price,
		&rec.Currency, &rec.Source, &rec.Category, &rec.LastUpdated,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}
