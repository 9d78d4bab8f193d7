// Package search finds new-item reference prices on Egyptian retail sites
// through the SerpAPI Google search endpoint.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/metrics"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

const (
	defaultEndpoint = "https://serpapi.com/search.json"
	defaultLocation = "Cairo, Egypt"
	defaultNum      = 30
	defaultCurrency = "EGP"
)

// DefaultSites are the retailers a price search is restricted to.
var DefaultSites = []string{
	"jumia.com.eg", "noon.com/egypt", "dubaiphone.net", "egyptlaptop.com", "cairosales.com",
	"dream2000.com", "b.tech", "xcite.com", "souq.com", "elarabygroup.com", "2b.com.eg",
}

var (
	// ErrNotConfigured is returned when no API key is set.
	ErrNotConfigured = errors.New("search API key not configured")

	// ErrNoResults is returned when a search yields no priced offers. It
	// wraps domain.ErrNotFound so callers can treat it as a plain miss.
	ErrNoResults = fmt.Errorf("no priced search results: %w", domain.ErrNotFound)
)

// OrganicResult is one organic Google result.
type OrganicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Client queries SerpAPI.
type Client struct {
	apiKey      string
	endpoint    string
	location    string
	num         int
	sites       []string
	client      *http.Client
	rateLimiter *RateLimiter
	log         *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithEndpoint overrides the SerpAPI endpoint.
func WithEndpoint(u string) Option {
	return func(c *Client) {
		c.endpoint = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimiter sends every call through r first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// WithSites replaces the retailer site list.
func WithSites(sites []string) Option {
	return func(c *Client) {
		if len(sites) > 0 {
			c.sites = sites
		}
	}
}

// WithLocation sets the Google search location.
func WithLocation(loc string) Option {
	return func(c *Client) {
		if loc != "" {
			c.location = loc
		}
	}
}

// WithResultCount sets how many organic results a price search asks for.
func WithResultCount(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.num = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient creates a SerpAPI client. Outbound requests are traced.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		location: defaultLocation,
		num:      defaultNum,
		sites:    DefaultSites,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type serpResponse struct {
	OrganicResults []OrganicResult `json:"organic_results"`
	Error          string          `json:"error"`
}

// Organic runs a Google search and returns up to num organic results.
func (c *Client) Organic(ctx context.Context, query string, num int) ([]OrganicResult, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.SearchDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.SearchDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}
	metrics.SearchAPICallsTotal.Inc()

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("location", c.location)
	params.Set("hl", "en")
	params.Set("num", strconv.Itoa(num))
	params.Set("api_key", c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var apiResp serpResponse
	if jsonErr := json.Unmarshal(body, &apiResp); jsonErr != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("search API error (status %d): %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("parsing search response: %w", jsonErr)
	}

	if apiResp.Error != "" && len(apiResp.OrganicResults) == 0 {
		// SerpAPI reports an empty result page as an error string.
		if strings.Contains(strings.ToLower(apiResp.Error), "hasn't returned any results") {
			return nil, nil
		}
		return nil, fmt.Errorf("search API error (status %d): %s", resp.StatusCode, apiResp.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API error (status %d): %s", resp.StatusCode, string(body))
	}

	return apiResp.OrganicResults, nil
}

// PriceQuery builds the new-price query restricted to the retailer sites.
func (c *Client) PriceQuery(brand, model string) string {
	sites := make([]string, len(c.sites))
	for i, s := range c.sites {
		sites[i] = "site:" + s
	}
	product := strings.TrimSpace(brand + " " + model)
	return fmt.Sprintf(`"%s" NEW price Egypt %s -used -مستعمل`, product, strings.Join(sites, " OR "))
}

// SearchPrice looks up the new price of a product. The quote carries the
// median offer price and the market statistics. A search without priced
// offers returns ErrNoResults.
func (c *Client) SearchPrice(ctx context.Context, brand, model, category string) (*domain.PriceQuote, error) {
	results, err := c.Organic(ctx, c.PriceQuery(brand, model), c.num)
	if err != nil {
		return nil, err
	}

	offers := Offers(results)
	metrics.SearchResultsExtracted.Observe(float64(len(offers)))
	c.log.Debug("price search finished",
		"brand", brand,
		"model", model,
		"category", category,
		"raw_results", len(results),
		"offers", len(offers),
	)

	stats := Stats(offers)
	if stats == nil {
		return nil, ErrNoResults
	}

	return &domain.PriceQuote{
		Price:    stats.PriceRange.Median,
		Currency: defaultCurrency,
		Source:   fmt.Sprintf("Egyptian Store (%s)", stats.BestDeal.Store),
		Market:   stats,
	}, nil
}
