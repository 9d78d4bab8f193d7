package handlers_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/api/handlers"
	storeMocks "github.com/aliaa039/Dynamic-Pricing-Justification/internal/store/mocks"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/validate"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

func TestPricingHandler_CalculatePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
		check      func(t *testing.T, got domain.PricingResult)
	}{
		{
			name: "manual reference price with one minor issue",
			body: map[string]any{
				"brand": "Canon",
				"model": "EOS 80D",
				"cv_output": map[string]any{
					"overall_condition": "good",
					"condition_score":   7.2,
					"usage_years":       0.8,
					"detected_issues": []any{
						map[string]any{"type": "scratch", "severity": "minor", "location": "body", "confidence": 0.9},
					},
				},
				"reference_price": 1000,
			},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got domain.PricingResult) {
				t.Helper()
				// usage 15 + good 5 + minor 2
				assert.Equal(t, 15.0, got.DiscountBreakdown["usage"])
				assert.Equal(t, 5.0, got.DiscountBreakdown["condition"])
				assert.Equal(t, 2.0, got.DiscountBreakdown["damage"])
				assert.Equal(t, 22.0, got.DiscountPercentage)
				assert.Equal(t, 780.0, got.CalculatedUsedPrice)
				assert.Equal(t, 1000.0, got.ReferenceNewPrice)
				assert.Equal(t, domain.SourceManual, got.PriceMetadata.Source)
				assert.Equal(t, 1, got.PriceMetadata.IssuesCount)
			},
		},
		{
			name: "database price",
			body: map[string]any{"brand": "Apple", "model": "iPhone 13", "cv_output": goodCVOutput()},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetPrice(mock.Anything, "apple_iphone_13").Return(iphoneRecord(), nil).Once()
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got domain.PricingResult) {
				t.Helper()
				assert.Equal(t, domain.SourceDatabase, got.PriceMetadata.Source)
				assert.Equal(t, 14000.0, got.CalculatedUsedPrice)
			},
		},
		{
			name: "every tier misses returns typed 404",
			body: map[string]any{"brand": "Acme", "model": "Widget", "cv_output": goodCVOutput()},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetPrice(mock.Anything, "acme_widget").Return(nil, domain.ErrNotFound).Once()
				m.EXPECT().GetCachedPrice(mock.Anything, "acme_widget").Return(nil, domain.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"status":"price_not_found"`,
		},
		{
			name: "store failure is a miss",
			body: map[string]any{"brand": "Acme", "model": "Widget", "cv_output": goodCVOutput()},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetPrice(mock.Anything, mock.Anything).Return(nil, errors.New("disk error")).Once()
				m.EXPECT().GetCachedPrice(mock.Anything, mock.Anything).Return(nil, errors.New("disk error")).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"instruction":"Please provide reference_price manually"`,
		},
		{
			name:       "missing brand returns 422",
			body:       map[string]any{"model": "iPhone 13", "cv_output": goodCVOutput()},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `expected required property brand to be present`,
		},
		{
			name: "non-positive reference price returns 422",
			body: map[string]any{
				"brand": "Apple", "model": "iPhone 13", "cv_output": goodCVOutput(), "reference_price": 0,
			},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "invalid JSON returns 400",
			body:       strings.NewReader(`not json`),
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng, ms := newTestEngine(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(eng))

			resp := api.Post("/calculate-price", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
			if tt.check != nil {
				tt.check(t, decode[domain.PricingResult](t, resp))
			}
		})
	}
}

func TestPricingHandler_GenerateExplanation(t *testing.T) {
	t.Parallel()

	excellent := map[string]any{
		"overall_condition": "excellent",
		"condition_score":   9.5,
		"usage_years":       0.3,
		"detected_issues":   []any{},
	}

	type explanation struct {
		Explanation      any `json:"explanation"`
		Pricing          struct {
			OriginalPrice      float64  `json:"original_price"`
			UsedPrice          float64  `json:"used_price"`
			DiscountPercentage float64  `json:"discount_percentage"`
			DiscountBreakdown  []string `json:"discount_breakdown"`
		} `json:"pricing"`
		ValueProposition string `json:"value_proposition"`
		ConditionSummary struct {
			Overall    string  `json:"overall"`
			Score      float64 `json:"score"`
			IssueCount int     `json:"issue_count"`
		} `json:"condition_summary"`
	}

	t.Run("bullets without issues have only condition and price lines", func(t *testing.T) {
		t.Parallel()

		eng, _ := newTestEngine(t)
		_, api := humatest.New(t)
		handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(eng))

		resp := api.Post("/generate-explanation", map[string]any{
			"cv_output":       excellent,
			"brand":           "Sony",
			"model":           "A7 III",
			"reference_price": 50000,
			"format":          "bullets",
		})
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		got := decode[explanation](t, resp)
		lines, ok := got.Explanation.([]any)
		require.True(t, ok)
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0].(string), "Condition: Excellent"))
		assert.True(t, strings.HasPrefix(lines[1].(string), "Price: "))

		// usage 10 + excellent 0
		assert.Equal(t, 10.0, got.Pricing.DiscountPercentage)
		assert.Equal(t, 45000.0, got.Pricing.UsedPrice)
		assert.Equal(t, []string{"10% for age and usage"}, got.Pricing.DiscountBreakdown[:1])
		assert.Equal(t, "Premium condition with minimal wear", got.ValueProposition)
		assert.Equal(t, "excellent", got.ConditionSummary.Overall)
		assert.Equal(t, 0, got.ConditionSummary.IssueCount)
	})

	t.Run("supplied pricing data is used as is", func(t *testing.T) {
		t.Parallel()

		eng, _ := newTestEngine(t)
		_, api := humatest.New(t)
		handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(eng))

		resp := api.Post("/generate-explanation", map[string]any{
			"cv_output": goodCVOutput(),
			"pricing_data": map[string]any{
				"reference_new_price":   10000,
				"calculated_used_price": 6500,
				"discount_percentage":   35,
				"discount_breakdown":    map[string]any{"usage": 30, "condition": 5},
			},
			"format": "short",
		})
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		got := decode[explanation](t, resp)
		assert.Equal(t, 6500.0, got.Pricing.UsedPrice)
		assert.Contains(t, got.Explanation, "35%")
	})

	t.Run("invalid cv_output lists every violation", func(t *testing.T) {
		t.Parallel()

		eng, _ := newTestEngine(t)
		_, api := humatest.New(t)
		handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(eng))

		resp := api.Post("/generate-explanation", map[string]any{
			"cv_output": map[string]any{"overall_condition": "mint", "condition_score": 42},
		})
		require.Equal(t, http.StatusBadRequest, resp.Code)

		body := resp.Body.String()
		assert.Contains(t, body, "invalid cv_output")
		assert.Contains(t, body, "missing required field: detected_issues")
		assert.Contains(t, body, "condition_score must be between 0 and 10")
		assert.Contains(t, body, `invalid overall_condition \"mint\"`)
	})

	t.Run("invalid pricing_data", func(t *testing.T) {
		t.Parallel()

		eng, _ := newTestEngine(t)
		_, api := humatest.New(t)
		handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(eng))

		resp := api.Post("/generate-explanation", map[string]any{
			"cv_output":    goodCVOutput(),
			"pricing_data": map[string]any{"reference_new_price": 100},
		})
		require.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "missing required field: calculated_used_price")
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		t.Parallel()

		eng, _ := newTestEngine(t)
		_, api := humatest.New(t)
		handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(eng))

		resp := api.Post("/generate-explanation", map[string]any{
			"cv_output": goodCVOutput(),
			"format":    "haiku",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}

func TestPricingHandler_GenerateReport(t *testing.T) {
	t.Parallel()

	t.Run("template report", func(t *testing.T) {
		t.Parallel()

		eng, ms := newTestEngine(t)
		ms.EXPECT().GetPrice(mock.Anything, "apple_iphone_13").Return(iphoneRecord(), nil).Once()

		_, api := humatest.New(t)
		handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(eng))

		resp := api.Post("/generate-report", map[string]any{
			"cv_output": goodCVOutput(),
			"brand":     "Apple",
			"model":     "iPhone 13",
			"use_llm":   true,
		})
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		body := resp.Body.String()
		assert.Contains(t, body, `# Apple iPhone 13 - Pricing Report`)
		assert.Contains(t, body, `"generated_by":"template"`)
		assert.Contains(t, body, `"backend":"none"`)
	})

	t.Run("price not found", func(t *testing.T) {
		t.Parallel()

		eng, ms := newTestEngine(t)
		ms.EXPECT().GetPrice(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Once()
		ms.EXPECT().GetCachedPrice(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Once()

		_, api := humatest.New(t)
		handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(eng))

		resp := api.Post("/generate-report", map[string]any{
			"cv_output": goodCVOutput(),
			"brand":     "Acme",
			"model":     "Widget",
		})
		require.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), `"status":"price_not_found"`)
	})
}

func TestPricingHandler_ValidateCV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      map[string]any
		wantValid bool
		wantErrs  int
	}{
		{
			name: "valid record",
			body: map[string]any{
				"overall_condition": "fair",
				"condition_score":   5.5,
				"detected_issues": []any{
					map[string]any{"type": "dent", "severity": "moderate", "location": "corner", "confidence": 0.7},
				},
			},
			wantValid: true,
		},
		{
			name:     "empty record",
			body:     map[string]any{},
			wantErrs: 3,
		},
		{
			name: "bad issue",
			body: map[string]any{
				"overall_condition": "good",
				"condition_score":   7,
				"detected_issues": []any{
					map[string]any{"type": "dent", "severity": "extreme", "location": "corner", "confidence": 1.5},
				},
			},
			wantErrs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng, _ := newTestEngine(t)
			_, api := humatest.New(t)
			handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(eng))

			resp := api.Post("/validate-cv-output", tt.body)
			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

			got := decode[validate.Result](t, resp)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Len(t, got.Errors, tt.wantErrs)
		})
	}
}
