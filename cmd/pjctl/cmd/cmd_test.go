package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// fakeAPI serves canned JSON per "METHOD /path" and records request bodies.
type fakeAPI struct {
	t         *testing.T
	responses map[string]response
	bodies    map[string]map[string]any
}

type response struct {
	status int
	body   any
}

func newFakeAPI(t *testing.T, responses map[string]response) *httptest.Server {
	t.Helper()

	f := &fakeAPI{t: t, responses: responses, bodies: make(map[string]map[string]any)}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	fakes[srv.URL] = f
	t.Cleanup(func() { delete(fakes, srv.URL) })
	return srv
}

var fakes = map[string]*fakeAPI{}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	if r.Body != nil && r.ContentLength != 0 {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			f.bodies[key] = body
		}
	}

	resp, ok := f.responses[key]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Not Found","status":404}`))
		return
	}
	status := resp.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if resp.body != nil {
		assert.NoError(f.t, json.NewEncoder(w).Encode(resp.body))
	}
}

// execute runs a fresh command tree against srv and returns stdout.
func execute(t *testing.T, srv *httptest.Server, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--server", srv.URL))
	err := root.Execute()
	return out.String(), err
}

func writeJSONFile(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func goodCV() map[string]any {
	return map[string]any{
		"overall_condition": "good",
		"condition_score":   0.75,
		"usage_level":       0.8,
		"detected_issues": []any{
			map[string]any{"type": "scratch", "location": "back", "severity": "minor", "confidence": 0.9},
		},
	}
}

func canonPricing() domain.PricingResult {
	return domain.PricingResult{
		ReferenceNewPrice:   1000,
		CalculatedUsedPrice: 780,
		DiscountPercentage:  22,
		DiscountBreakdown:   map[string]float64{"condition": 15, "usage": 5, "issues": 2},
		PriceMetadata: domain.PriceMetadata{
			Source:   domain.SourceManual,
			Brand:    "Canon",
			Model:    "EOS 80D",
			Currency: "EGP",
		},
	}
}

func TestCalculate(t *testing.T) {
	srv := newFakeAPI(t, map[string]response{
		"POST /calculate-price": {body: canonPricing()},
	})
	cvPath := writeJSONFile(t, goodCV())

	out, err := execute(t, srv, "", "calculate",
		"--brand", "Canon", "--model", "EOS 80D", "--cv-file", cvPath, "--reference-price", "1000")
	require.NoError(t, err)

	assert.Contains(t, out, "Product:          Canon EOS 80D")
	assert.Contains(t, out, "EGP 1000.00 (manual)")
	assert.Contains(t, out, "Used price:       EGP 780.00")
	assert.Contains(t, out, "Discount:         22%")
	assert.Contains(t, out, "  condition       15%")

	body := fakes[srv.URL].bodies["POST /calculate-price"]
	require.NotNil(t, body)
	assert.Equal(t, "Canon", body["brand"])
	assert.InDelta(t, 1000.0, body["reference_price"], 0.001)
	assert.Equal(t, "good", body["cv_output"].(map[string]any)["overall_condition"])
}

func TestCalculate_Stdin(t *testing.T) {
	srv := newFakeAPI(t, map[string]response{
		"POST /calculate-price": {body: canonPricing()},
	})

	stdin, err := json.Marshal(goodCV())
	require.NoError(t, err)

	out, err := execute(t, srv, string(stdin), "calculate",
		"--brand", "Canon", "--model", "EOS 80D", "--cv-file", "-", "--output", "json")
	require.NoError(t, err)

	var got domain.PricingResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 780.0, got.CalculatedUsedPrice)

	body := fakes[srv.URL].bodies["POST /calculate-price"]
	_, hasRef := body["reference_price"]
	assert.False(t, hasRef, "reference_price is only sent when the flag is set")
}

func TestCalculate_InputErrors(t *testing.T) {
	srv := newFakeAPI(t, nil)
	badPath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("[1, 2]"), 0o600))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing brand", args: []string{"calculate", "--model", "X", "--cv-file", "cv.json"}, wantErr: "--brand and --model are required"},
		{name: "missing cv file", args: []string{"calculate", "--brand", "A", "--model", "B"}, wantErr: "--cv-file is required"},
		{name: "unreadable cv file", args: []string{"calculate", "--brand", "A", "--model", "B", "--cv-file", "/nonexistent/cv.json"}, wantErr: "reading /nonexistent/cv.json"},
		{name: "cv file not an object", args: []string{"calculate", "--brand", "A", "--model", "B", "--cv-file", badPath}, wantErr: "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, srv, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCalculate_PriceNotFound(t *testing.T) {
	srv := newFakeAPI(t, map[string]response{
		"POST /calculate-price": {
			status: http.StatusNotFound,
			body: map[string]string{
				"status":  "price_not_found",
				"message": "Price not found for Acme Widget",
			},
		},
	})
	cvPath := writeJSONFile(t, goodCV())

	_, err := execute(t, srv, "", "calculate", "--brand", "Acme", "--model", "Widget", "--cv-file", cvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
	assert.Contains(t, err.Error(), "price_not_found")
}

func TestExplain(t *testing.T) {
	srv := newFakeAPI(t, map[string]response{
		"POST /generate-explanation": {body: engine.Explanation{
			Explanation:      []string{"Condition: Excellent", "Price: EGP 45,000.00 (10% discount)"},
			ValueProposition: "Premium condition with minimal wear",
		}},
	})
	cvPath := writeJSONFile(t, goodCV())
	pricingPath := writeJSONFile(t, canonPricing())

	out, err := execute(t, srv, "", "explain",
		"--cv-file", cvPath, "--pricing-file", pricingPath, "--format", "bullets")
	require.NoError(t, err)

	assert.Equal(t,
		"- Condition: Excellent\n- Price: EGP 45,000.00 (10% discount)\n\nPremium condition with minimal wear\n",
		out)

	body := fakes[srv.URL].bodies["POST /generate-explanation"]
	assert.Equal(t, "bullets", body["format"])
	assert.InDelta(t, 780.0, body["pricing_data"].(map[string]any)["calculated_used_price"], 0.001)
}

func TestReport(t *testing.T) {
	pricing := canonPricing()
	srv := newFakeAPI(t, map[string]response{
		"POST /generate-report": {body: engine.Report{
			Report:  "# Canon EOS 80D - Pricing Report",
			Pricing: &pricing,
			Metadata: engine.ReportMetadata{
				GeneratedBy: "template",
				Backend:     "none",
			},
		}},
	})
	cvPath := writeJSONFile(t, goodCV())

	out, err := execute(t, srv, "", "report", "--brand", "Canon", "--model", "EOS 80D", "--cv-file", cvPath, "--llm")
	require.NoError(t, err)
	assert.Equal(t, "# Canon EOS 80D - Pricing Report\n", out)
	assert.Equal(t, true, fakes[srv.URL].bodies["POST /generate-report"]["use_llm"])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		resp map[string]any
		want string
	}{
		{
			name: "valid",
			resp: map[string]any{"valid": true, "errors": []string{}},
			want: "Condition record is valid.\n",
		},
		{
			name: "invalid",
			resp: map[string]any{"valid": false, "errors": []string{
				"Missing field: condition_score",
				"Invalid overall_condition: pristine",
			}},
			want: "Condition record is invalid (2 errors):\n" +
				"  - Missing field: condition_score\n" +
				"  - Invalid overall_condition: pristine\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFakeAPI(t, map[string]response{
				"POST /validate-cv-output": {body: tt.resp},
			})
			cvPath := writeJSONFile(t, goodCV())

			out, err := execute(t, srv, "", "validate", "--cv-file", cvPath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSearch(t *testing.T) {
	srv := newFakeAPI(t, map[string]response{
		"POST /search-price": {body: map[string]any{
			"status":   "found",
			"brand":    "Apple",
			"model":    "iPhone 13",
			"price":    24999,
			"currency": "EGP",
			"source":   "Web Search",
			"market": domain.MarketStats{
				TotalResults: 3,
				StoresFound:  []string{"Jumia", "Noon", "B.TECH"},
				PriceRange:   domain.PriceRange{Min: 23850, Max: 25499, Median: 24999},
				BestDeal:     &domain.MarketOffer{Store: "Noon", Price: 23850},
				Results: []domain.MarketOffer{
					{Title: "Apple iPhone 13 128GB", Store: "Noon", Price: 23850},
				},
			},
		}},
	})

	out, err := execute(t, srv, "", "search", "--brand", "Apple", "--model", "iPhone 13")
	require.NoError(t, err)
	assert.Contains(t, out, "EGP 24999.00 (Web Search)")
	assert.Contains(t, out, "Jumia, Noon, B.TECH")
	assert.Contains(t, out, "Best deal:  EGP 23850.00 at Noon")
	assert.Contains(t, out, "Apple iPhone 13 128GB")
}

func TestSpecs(t *testing.T) {
	srv := newFakeAPI(t, map[string]response{
		"POST /extract-specs": {body: domain.ProductSpecs{
			ProductName:      "Samsung Galaxy S21",
			Specifications:   map[string]string{"RAM": "8GB", "Display": "6.2 inch AMOLED"},
			ExtractionStatus: domain.SpecsExtracted,
		}},
	})

	out, err := execute(t, srv, "", "specs", "--brand", "Samsung", "--model", "Galaxy S21")
	require.NoError(t, err)
	assert.Contains(t, out, "Status:   success")
	assert.Less(t, strings.Index(out, "Display:"), strings.Index(out, "RAM:"))
}

func TestWorkflow(t *testing.T) {
	pricing := canonPricing()
	srv := newFakeAPI(t, map[string]response{
		"POST /cv-to-pricing": {body: engine.WorkflowResult{
			Success:    true,
			DataSource: domain.SourceDatabase,
			ProductInfo: engine.ProductInfo{
				Name: "Apple iPhone 13",
				Type: "phone",
			},
			CVAnalysis: domain.ConditionSummary{OverallCondition: "good", ConditionScore: 0.75},
			Pricing:    &pricing,
			PricingValidation: domain.PricingValidation{
				Valid:    true,
				Warnings: []string{"Discount is high for good condition"},
			},
			Report: domain.BilingualReport{English: "Fair price for a lightly used phone."},
		}},
	})
	analysisPath := writeJSONFile(t, map[string]any{"front": goodCV()})

	out, err := execute(t, srv, "", "workflow",
		"--name", "Apple iPhone 13", "--type", "phone", "--usage-years", "1.5", "--analysis-file", analysisPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Product:       Apple iPhone 13 (phone)")
	assert.Contains(t, out, "Price source:  database")
	assert.Contains(t, out, "Used price:")
	assert.Contains(t, out, "  ! Discount is high for good condition")
	assert.Contains(t, out, "Fair price for a lightly used phone.")

	body := fakes[srv.URL].bodies["POST /cv-to-pricing"]
	assert.Equal(t, "Apple iPhone 13", body["product_name"])
	assert.InDelta(t, 1.5, body["usage_years"], 0.001)
	assert.Contains(t, body["analysis_results"], "front")
}

func TestWorkflow_RequiresName(t *testing.T) {
	srv := newFakeAPI(t, nil)

	_, err := execute(t, srv, "", "workflow", "--analysis-file", "views.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name is required")
}

func TestQuick(t *testing.T) {
	pricing := domain.PricingResult{
		ReferenceNewPrice:   20000,
		CalculatedUsedPrice: 12000,
		DiscountPercentage:  40,
		PriceMetadata:       domain.PriceMetadata{Source: domain.SourceDatabase, Currency: "EGP"},
	}
	srv := newFakeAPI(t, map[string]response{
		"POST /pricing-only": {body: engine.PricingOnlyResult{Success: true, Pricing: &pricing}},
	})

	out, err := execute(t, srv, "", "quick", "--name", "Apple iPhone 13", "--usage-years", "2.5")
	require.NoError(t, err)
	assert.Contains(t, out, "EGP 12000.00")
	assert.Contains(t, out, "40%")
}

func TestPrices(t *testing.T) {
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	srv := newFakeAPI(t, map[string]response{
		"GET /prices": {body: map[string]any{
			"prices": []domain.PriceRecord{
				{Key: "apple_iphone_13", Brand: "Apple", Model: "iPhone 13", Price: 20000, Currency: "EGP", Category: "phone", LastUpdated: updated},
			},
			"total":  3,
			"limit":  1,
			"offset": 0,
		}},
		"GET /prices/stats": {body: domain.PriceStats{
			TotalProducts: 3,
			ByCategory:    map[string]int{"phone": 2, "laptop": 1},
			ByBrand:       map[string]int{"Apple": 1, "Samsung": 1, "Dell": 1},
		}},
		"PUT /prices": {body: domain.PriceRecord{Key: "dell_xps_15", Price: 89999, Currency: "EGP"}},
	})

	out, err := execute(t, srv, "", "prices", "list", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "apple_iphone_13")
	assert.Contains(t, out, "EGP 20000.00")
	assert.Contains(t, out, "2025-06-01")
	assert.Contains(t, out, "Showing 1 of 3 entries.")

	out, err = execute(t, srv, "", "prices", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total products:  3")
	assert.Less(t, strings.Index(out, "laptop"), strings.Index(out, "phone"))

	out, err = execute(t, srv, "", "prices", "add", "--brand", "Dell", "--model", "XPS 15", "--price", "89999")
	require.NoError(t, err)
	assert.Equal(t, "Price saved: dell_xps_15 (EGP 89999.00)\n", out)
	assert.Equal(t, "XPS 15", fakes[srv.URL].bodies["PUT /prices"]["model"])
}

func TestPricesDelete(t *testing.T) {
	srv := newFakeAPI(t, map[string]response{
		"DELETE /prices/Apple/iPhone 13": {status: http.StatusNoContent},
	})

	out, err := execute(t, srv, "", "prices", "delete", "Apple", "iPhone 13")
	require.NoError(t, err)
	assert.Equal(t, "Price for Apple iPhone 13 deleted.\n", out)

	_, err = execute(t, srv, "", "prices", "delete", "Acme", "Widget")
	require.Error(t, err)
	assert.Equal(t, "no price entry for Acme Widget", err.Error())
}

func TestCache(t *testing.T) {
	srv := newFakeAPI(t, map[string]response{
		"POST /cache/purge": {body: map[string]any{"status": "purged", "removed": 2}},
		"DELETE /cache":     {body: map[string]any{"status": "cleared", "removed": 5}},
	})

	out, err := execute(t, srv, "", "cache", "purge")
	require.NoError(t, err)
	assert.Equal(t, "Removed 2 expired cache entries.\n", out)

	out, err = execute(t, srv, "", "cache", "clear", "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"cleared","removed":5}`, out)
}

func TestHealth(t *testing.T) {
	srv := newFakeAPI(t, map[string]response{
		"GET /health": {body: map[string]any{
			"status":   "healthy",
			"service":  "dynamic-pricing",
			"tiers":    []string{"manual", "database", "cache", "web_search"},
			"features": map[string]bool{"web_search": true, "llm_reports": false, "specs": true},
		}},
	})

	out, err := execute(t, srv, "", "health")
	require.NoError(t, err)
	assert.Contains(t, out, "Status:        healthy")
	assert.Contains(t, out, "manual -> database -> cache -> web_search")
	assert.Contains(t, out, "Web search:    enabled")
	assert.Contains(t, out, "LLM reports:   disabled")
}
