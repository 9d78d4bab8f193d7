package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// ListPricesParams holds query parameters for listing the price database.
type ListPricesParams struct {
	Search   string
	Brand    string
	Category string
	Limit    int
	Offset   int
	OrderBy  string
}

// PricesPage is one page of price database entries.
type PricesPage struct {
	Prices []domain.PriceRecord `json:"prices"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// PriceEntry is a price database entry to add or replace.
type PriceEntry struct {
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
	Source   string  `json:"source,omitempty"`
	Category string  `json:"category,omitempty"`
}

// CacheResult reports how many cache entries were removed.
type CacheResult struct {
	Status  string `json:"status"`
	Removed int    `json:"removed"`
}

// ListPrices returns price database entries with optional filters.
func (c *Client) ListPrices(ctx context.Context, params *ListPricesParams) (*PricesPage, error) {
	q := url.Values{}
	if params != nil {
		setIf(q, "search", params.Search)
		setIf(q, "brand", params.Brand)
		setIf(q, "category", params.Category)
		setIf(q, "order_by", params.OrderBy)
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
	}

	path := "/prices"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out PricesPage
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertPrice adds or replaces a price database entry.
func (c *Client) UpsertPrice(ctx context.Context, entry *PriceEntry) (*domain.PriceRecord, error) {
	var out domain.PriceRecord
	if err := c.put(ctx, "/prices", entry, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePrice removes a price database entry.
func (c *Client) DeletePrice(ctx context.Context, brand, model string) error {
	return c.del(ctx, "/prices/"+url.PathEscape(brand)+"/"+url.PathEscape(model), nil)
}

// PriceStats returns price database statistics.
func (c *Client) PriceStats(ctx context.Context) (*domain.PriceStats, error) {
	var out domain.PriceStats
	if err := c.get(ctx, "/prices/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PurgeCache removes expired cache entries.
func (c *Client) PurgeCache(ctx context.Context) (*CacheResult, error) {
	var out CacheResult
	if err := c.post(ctx, "/cache/purge", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearCache removes every cache entry.
func (c *Client) ClearCache(ctx context.Context) (*CacheResult, error) {
	var out CacheResult
	if err := c.del(ctx, "/cache", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
