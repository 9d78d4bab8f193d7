package pricing_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

func TestExplain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		breakdown map[string]float64
		want      []string
	}{
		{name: "empty", breakdown: nil, want: []string{}},
		{
			name:      "standard factors in fixed order",
			breakdown: map[string]float64{"damage": 2, "usage": 15, "condition": 5},
			want:      []string{"15% for age and usage", "5% for overall condition", "2% for physical damage"},
		},
		{
			name:      "zero factors omitted",
			breakdown: map[string]float64{"usage": 10, "condition": 0, "damage": 0},
			want:      []string{"10% for age and usage"},
		},
		{
			name:      "unknown factors appended sorted",
			breakdown: map[string]float64{"usage": 10, "battery_health": 3.25, "accessories": 1},
			want:      []string{"10% for age and usage", "1% for accessories", "3.3% for battery health"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pricing.Explain(tt.breakdown))
		})
	}
}

func TestValueProposition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		discount float64
		want     string
	}{
		{discount: 0, want: "Premium condition with minimal wear"},
		{discount: 14.99, want: "Premium condition with minimal wear"},
		{discount: 15, want: "Good value for a well-maintained item"},
		{discount: 29.9, want: "Good value for a well-maintained item"},
		{discount: 30, want: "Significant savings on a functional item"},
		{discount: 49.99, want: "Significant savings on a functional item"},
		{discount: 50, want: "Maximum savings for budget-conscious buyers"},
		{discount: 100, want: "Maximum savings for budget-conscious buyers"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pricing.ValueProposition(tt.discount), "discount=%v", tt.discount)
	}
}

func TestValueProposition_Exhaustive(t *testing.T) {
	t.Parallel()

	for d := 0.0; d <= 100; d += 0.25 {
		assert.NotEmpty(t, pricing.ValueProposition(d))
	}
}

func TestBreakdownText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "No discount factors applied.", pricing.BreakdownText(0, nil))
	assert.Equal(t,
		"The 22% discount consists of: 15% for age and usage, 5% for overall condition, 2% for physical damage.",
		pricing.BreakdownText(22, map[string]float64{"usage": 15, "condition": 5, "damage": 2}),
	)
}

func TestCompareToMarket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		used   float64
		market *float64
		want   string
		wantOK bool
	}{
		{name: "no market data", used: 100, market: nil, wantOK: false},
		{name: "zero market", used: 100, market: price(0), wantOK: false},
		{name: "well below", used: 700, market: price(1000), want: "This price is 30% below market average", wantOK: true},
		{name: "well above", used: 1250, market: price(1000), want: "This price is 25% above market average", wantOK: true},
		{name: "within band", used: 950, market: price(1000), want: "This price is competitive with market average", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := pricing.CompareToMarket(tt.used, tt.market)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExplanation(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"Breakdown: 15% for age, 5% for condition, 2% for physical damage. Total discount: 22%",
		pricing.Explanation(22, map[string]float64{"usage": 15, "condition": 5, "damage": 2}),
	)
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "22%", pricing.FormatPercent(22))
	assert.Equal(t, "12.5%", pricing.FormatPercent(12.5))
	assert.Equal(t, "33.3%", pricing.FormatPercent(33.333))
	assert.Equal(t, "0%", pricing.FormatPercent(0))
}

func TestValidatePricing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		used, newP   float64
		market       *float64
		cond         domain.Condition
		wantValid    bool
		wantDiscount float64
		wantWarning  string
	}{
		{name: "reasonable good", used: 780, newP: 1000, cond: domain.ConditionGood, wantValid: true, wantDiscount: 22},
		{name: "used above new", used: 1100, newP: 1000, cond: domain.ConditionGood, wantDiscount: -10, wantWarning: "exceeds the new price"},
		{name: "discount too low for poor", used: 900, newP: 1000, cond: domain.ConditionPoor, wantDiscount: 10, wantWarning: "is low for poor condition"},
		{name: "discount too high for excellent", used: 400, newP: 1000, cond: domain.ConditionExcellent, wantDiscount: 60, wantWarning: "is high for excellent condition"},
		{name: "above market", used: 800, newP: 1000, market: price(750), cond: domain.ConditionGood, wantDiscount: 20, wantWarning: "above the lowest market offer"},
		{name: "zero new price", used: 0, newP: 0, cond: domain.ConditionGood, wantWarning: "greater than zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pricing.ValidatePricing(tt.used, tt.newP, tt.market, tt.cond)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.InDelta(t, tt.wantDiscount, got.Discount, 1e-9)
			if tt.wantWarning == "" {
				assert.Empty(t, got.Warnings)
				return
			}
			found := slices.ContainsFunc(got.Warnings, func(w string) bool {
				return strings.Contains(w, tt.wantWarning)
			})
			assert.True(t, found, "warnings %v missing %q", got.Warnings, tt.wantWarning)
		})
	}
}

func TestProductKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		brand, model, category string
		wantProduct, wantCache string
	}{
		{"Apple", "iPhone 13 Pro", "", "apple_iphone_13_pro", "apple_iphone_13_pro"},
		{"Samsung", "Galaxy S21-Ultra", "mobile", "samsung_galaxy_s21_ultra", "samsung_galaxy_s21_ultra_mobile"},
		{"  HP ", "Envy x360 (2023)!", "Laptop", "hp_envy_x360_2023", "hp_envy_x360_2023_laptop"},
		{"Dell", "XPS  13", "home office", "dell_xps_13", "dell_xps_13_home_office"},
		{"سامسونج", "جالاكسي S21", "موبايل", "سامسونج_جالاكسي_s21", "سامسونج_جالاكسي_s21_موبايل"},
		{"Xiaomi", "Redmi 测试", "", "xiaomi_redmi_测试", "xiaomi_redmi_测试"},
		{"ÄPPLE", "Café-Édition", "", "äpple_café_édition", "äpple_café_édition"},
		{"!!", "--", "mobile", "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantProduct, pricing.ProductKey(tt.brand, tt.model))
		assert.Equal(t, tt.wantCache, pricing.CacheKey(tt.brand, tt.model, tt.category))
	}

	// Distinct non-Latin names must not share a key.
	assert.NotEqual(t, pricing.ProductKey("سامسونج", "جالاكسي"), pricing.ProductKey("شاومي", "ريدمي"))
	assert.NotEqual(t, pricing.CacheKey("Xiaomi", "Redmi 测试", ""), pricing.CacheKey("Xiaomi", "Redmi 样品", ""))
}
