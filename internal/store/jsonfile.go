package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// priceFile is the on-disk layout of the price database.
type priceFile struct {
	Products      map[string]domain.PriceRecord `json:"products"`
	LastUpdated   time.Time                     `json:"last_updated"`
	TotalProducts int                           `json:"total_products"`
}

// loadedPrice and loadedCacheEntry read records with either RFC 3339 or
// zoneless ISO 8601 timestamps.
type loadedPrice struct {
	domain.PriceRecord
	LastUpdated fileTime `json:"last_updated"`
}

type loadedCacheEntry struct {
	domain.CachedPrice
	CachedAt fileTime `json:"timestamp"`
}

// fileTimeLayouts are tried in order. Layouts without a zone parse as UTC.
var fileTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// fileTime is a timestamp as found in price files. Null and "" decode to
// the zero time.
type fileTime time.Time

func (t *fileTime) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("decoding timestamp: %w", err)
	}
	if s == nil || *s == "" {
		*t = fileTime{}
		return nil
	}
	for _, layout := range fileTimeLayouts {
		if v, err := time.Parse(layout, *s); err == nil {
			*t = fileTime(v)
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", *s)
}

// JSONStore implements Store on two JSON documents: one for the price
// database and one for the price cache. Every mutation rewrites the
// affected file atomically.
type JSONStore struct {
	pricesPath string
	cachePath  string
	now        func() time.Time

	mu     sync.RWMutex
	prices map[string]domain.PriceRecord
	cache  map[string]domain.CachedPrice
}

var _ Store = (*JSONStore)(nil)

// JSONOption configures a JSONStore.
type JSONOption func(*JSONStore)

// WithJSONClock overrides the clock used to stamp records.
func WithJSONClock(now func() time.Time) JSONOption {
	return func(s *JSONStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewJSONStore loads the price database and cache files. Missing files
// start empty; unreadable or malformed files are an error so they are
// never overwritten. Timestamps may be RFC 3339 or ISO 8601 without a
// zone, which is read as UTC; files are always written back as RFC 3339.
func NewJSONStore(pricesPath, cachePath string, opts ...JSONOption) (*JSONStore, error) {
	s := &JSONStore{
		pricesPath: pricesPath,
		cachePath:  cachePath,
		now:        time.Now,
		prices:     make(map[string]domain.PriceRecord),
		cache:      make(map[string]domain.CachedPrice),
	}
	for _, opt := range opts {
		opt(s)
	}

	var pf struct {
		Products map[string]loadedPrice `json:"products"`
	}
	if err := readJSON(pricesPath, &pf); err != nil {
		return nil, fmt.Errorf("loading price database: %w", err)
	}
	for key, loaded := range pf.Products {
		rec := loaded.PriceRecord
		rec.Key = key
		rec.LastUpdated = time.Time(loaded.LastUpdated)
		s.prices[key] = rec
	}

	var cache map[string]loadedCacheEntry
	if err := readJSON(cachePath, &cache); err != nil {
		return nil, fmt.Errorf("loading price cache: %w", err)
	}
	for key, loaded := range cache {
		entry := loaded.CachedPrice
		entry.Key = key
		entry.CachedAt = time.Time(loaded.CachedAt)
		s.cache[key] = entry
	}

	return s, nil
}

// Close is a no-op; every mutation is already on disk.
func (*JSONStore) Close() {}

// Ping reports whether the data directories are reachable.
func (s *JSONStore) Ping(context.Context) error {
	for _, p := range []string{s.pricesPath, s.cachePath} {
		if _, err := os.Stat(filepath.Dir(p)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", p, err)
		}
	}
	return nil
}

// Migrate creates the data directories.
func (s *JSONStore) Migrate(context.Context) error {
	for _, p := range []string{s.pricesPath, s.cachePath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("creating data directory for %s: %w", p, err)
		}
	}
	return nil
}

// GetPrice returns the price record for key.
func (s *JSONStore) GetPrice(_ context.Context, key string) (*domain.PriceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.prices[key]
	if !ok {
		return nil, fmt.Errorf("price %q: %w", key, ErrNotFound)
	}
	return &rec, nil
}

// UpsertPrice inserts or replaces a price record by key.
func (s *JSONStore) UpsertPrice(_ context.Context, rec *domain.PriceRecord) error {
	if rec.LastUpdated.IsZero() {
		rec.LastUpdated = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.prices[rec.Key]
	s.prices[rec.Key] = *rec
	if err := s.savePrices(); err != nil {
		if existed {
			s.prices[rec.Key] = prev
		} else {
			delete(s.prices, rec.Key)
		}
		return err
	}
	return nil
}

// DeletePrice removes a price record.
func (s *JSONStore) DeletePrice(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.prices[key]
	if !ok {
		return fmt.Errorf("price %q: %w", key, ErrNotFound)
	}
	delete(s.prices, key)
	if err := s.savePrices(); err != nil {
		s.prices[key] = prev
		return err
	}
	return nil
}

// ListPrices returns a page of price records and the total match count.
func (s *JSONStore) ListPrices(_ context.Context, q *PriceQuery) ([]domain.PriceRecord, int, error) {
	if q == nil {
		q = &PriceQuery{}
	}

	s.mu.RLock()
	all := make([]domain.PriceRecord, 0, len(s.prices))
	for _, rec := range s.prices {
		all = append(all, rec)
	}
	s.mu.RUnlock()

	page, total := q.Apply(all)
	return page, total, nil
}

// PriceStats counts records by category and brand.
func (s *JSONStore) PriceStats(context.Context) (*domain.PriceStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &domain.PriceStats{
		TotalProducts: len(s.prices),
		ByCategory:    make(map[string]int),
		ByBrand:       make(map[string]int),
	}
	for _, rec := range s.prices {
		stats.ByCategory[orUnknown(rec.Category)]++
		stats.ByBrand[orUnknown(rec.Brand)]++
		if stats.LastUpdated == nil || rec.LastUpdated.After(*stats.LastUpdated) {
			t := rec.LastUpdated
			stats.LastUpdated = &t
		}
	}
	return stats, nil
}

// GetCachedPrice returns the cache entry for key regardless of its age.
func (s *JSONStore) GetCachedPrice(_ context.Context, key string) (*domain.CachedPrice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[key]
	if !ok {
		return nil, fmt.Errorf("cached price %q: %w", key, ErrNotFound)
	}
	return &entry, nil
}

// SetCachedPrice writes or replaces a cache entry.
func (s *JSONStore) SetCachedPrice(_ context.Context, entry *domain.CachedPrice) error {
	if entry.CachedAt.IsZero() {
		entry.CachedAt = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.cache[entry.Key]
	s.cache[entry.Key] = *entry
	if err := s.saveCache(); err != nil {
		if existed {
			s.cache[entry.Key] = prev
		} else {
			delete(s.cache, entry.Key)
		}
		return err
	}
	return nil
}

// EvictCachedPrice removes the entry for key if it is still the one cached
// at cachedAt. Missing or replaced entries are left alone.
func (s *JSONStore) EvictCachedPrice(_ context.Context, key string, cachedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.cache[key]
	if !ok || !prev.CachedAt.Equal(cachedAt) {
		return false, nil
	}
	delete(s.cache, key)
	if err := s.saveCache(); err != nil {
		s.cache[key] = prev
		return false, err
	}
	return true, nil
}

// PurgeCachedPrices removes entries cached before cutoff.
func (s *JSONStore) PurgeCachedPrices(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := make(map[string]domain.CachedPrice)
	for key, entry := range s.cache {
		if entry.CachedAt.Before(cutoff) {
			removed[key] = entry
			delete(s.cache, key)
		}
	}
	if len(removed) == 0 {
		return 0, nil
	}
	if err := s.saveCache(); err != nil {
		for key, entry := range removed {
			s.cache[key] = entry
		}
		return 0, err
	}
	return len(removed), nil
}

// ClearCachedPrices removes every cache entry.
func (s *JSONStore) ClearCachedPrices(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.cache
	s.cache = make(map[string]domain.CachedPrice)
	if err := s.saveCache(); err != nil {
		s.cache = prev
		return 0, err
	}
	return len(prev), nil
}

// savePrices must be called with mu held.
func (s *JSONStore) savePrices() error {
	pf := priceFile{
		Products:      s.prices,
		LastUpdated:   s.now().UTC(),
		TotalProducts: len(s.prices),
	}
	if err := writeJSON(s.pricesPath, pf); err != nil {
		return fmt.Errorf("saving price database: %w", err)
	}
	return nil
}

// saveCache must be called with mu held.
func (s *JSONStore) saveCache() error {
	if err := writeJSON(s.cachePath, s.cache); err != nil {
		return fmt.Errorf("saving price cache: %w", err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// writeJSON replaces path through a temp file and rename so readers never
// see a partial document.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return unknownGroup
	}
	return s
}
