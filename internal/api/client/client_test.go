package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

func jsonServer(t *testing.T, fn func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(fn))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1")
	_, err := c.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_APIError(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"price_not_found","message":"Price not found for Acme Widget"}`))
	})

	c := New(srv.URL)
	_, err := c.CalculatePrice(context.Background(), &PriceRequest{Brand: "Acme", Model: "Widget"})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "API error (HTTP 404)")
	assert.Contains(t, err.Error(), "price_not_found")
}

func TestClient_CalculatePrice(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calculate-price", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Canon", body["brand"])
		assert.InDelta(t, 1000.0, body["reference_price"], 0.001)

		_ = json.NewEncoder(w).Encode(domain.PricingResult{
			ReferenceNewPrice:   1000,
			CalculatedUsedPrice: 780,
			DiscountPercentage:  22,
		})
	})

	ref := 1000.0
	c := New(srv.URL)
	got, err := c.CalculatePrice(context.Background(), &PriceRequest{
		Brand:          "Canon",
		Model:          "EOS 80D",
		CVOutput:       map[string]any{"overall_condition": "good"},
		ReferencePrice: &ref,
	})
	require.NoError(t, err)
	assert.Equal(t, 780.0, got.CalculatedUsedPrice)
}

func TestClient_Explain(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate-explanation", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bullets", body["format"])

		_ = json.NewEncoder(w).Encode(engine.Explanation{
			Explanation:      []string{"Condition: Excellent", "Price: EGP 900.00 (10% discount)"},
			ValueProposition: "Premium condition with minimal wear",
		})
	})

	c := New(srv.URL)
	got, err := c.Explain(context.Background(), &ExplainRequest{
		PriceRequest: PriceRequest{CVOutput: map[string]any{}},
		Format:       "bullets",
	})
	require.NoError(t, err)
	lines, ok := got.Explanation.([]any)
	require.True(t, ok)
	assert.Len(t, lines, 2)
	assert.Equal(t, "Premium condition with minimal wear", got.ValueProposition)
}

func TestClient_CVToPricing(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cv-to-pricing", r.URL.Path)
		_ = json.NewEncoder(w).Encode(engine.WorkflowResult{
			Success:    true,
			DataSource: domain.SourceDatabase,
			Pricing:    &domain.PricingResult{CalculatedUsedPrice: 13600},
		})
	})

	c := New(srv.URL)
	got, err := c.CVToPricing(context.Background(), &WorkflowRequest{
		ProductName:     "Apple iPhone 13",
		ProductType:     "phone",
		AnalysisResults: map[string]any{"front": map[string]any{"overall_condition": "good"}},
	})
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, 13600.0, got.Pricing.CalculatedUsedPrice)
}

func TestClient_ListPrices(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prices", r.URL.Path)
		assert.Equal(t, "Apple", r.URL.Query().Get("brand"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.False(t, r.URL.Query().Has("offset"))

		_ = json.NewEncoder(w).Encode(PricesPage{
			Prices: []domain.PriceRecord{{Key: "apple_iphone_13"}},
			Total:  1,
			Limit:  10,
		})
	})

	c := New(srv.URL)
	got, err := c.ListPrices(context.Background(), &ListPricesParams{Brand: "Apple", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
	assert.Equal(t, "apple_iphone_13", got.Prices[0].Key)
}

func TestClient_UpsertAndDeletePrice(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			assert.Equal(t, "/prices", r.URL.Path)
			var entry PriceEntry
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&entry))
			_ = json.NewEncoder(w).Encode(domain.PriceRecord{Key: "samsung_galaxy_s21", Price: entry.Price})
		case http.MethodDelete:
			assert.Equal(t, "/prices/Samsung/Galaxy%20S21", r.URL.EscapedPath())
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})

	c := New(srv.URL)
	rec, err := c.UpsertPrice(context.Background(), &PriceEntry{Brand: "Samsung", Model: "Galaxy S21", Price: 18000})
	require.NoError(t, err)
	assert.Equal(t, "samsung_galaxy_s21", rec.Key)
	assert.Equal(t, 18000.0, rec.Price)

	require.NoError(t, c.DeletePrice(context.Background(), "Samsung", "Galaxy S21"))
}

func TestClient_Cache(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/cache/purge":
			_ = json.NewEncoder(w).Encode(CacheResult{Status: "purged", Removed: 2})
		case r.Method == http.MethodDelete && r.URL.Path == "/cache":
			_ = json.NewEncoder(w).Encode(CacheResult{Status: "cleared", Removed: 7})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	c := New(srv.URL)
	purged, err := c.PurgeCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, purged.Removed)

	cleared, err := c.ClearCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cleared", cleared.Status)
}

func TestClient_Health(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"healthy","service":"dynamic-pricing",` +
			`"tiers":["manual","database","cache"],"features":{"web_search":false,"llm_reports":true,"specs":false}}`))
	})

	c := New(srv.URL)
	got, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", got.Status)
	assert.True(t, got.Features.LLMReports)
	assert.Len(t, got.Tiers, 3)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com/", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
	assert.Equal(t, "http://example.com", c.baseURL)
}
