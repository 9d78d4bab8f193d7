package narrative_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/narrative"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

func pricingResult(newPrice, used, discount float64, currency string) *domain.PricingResult {
	return &domain.PricingResult{
		ReferenceNewPrice:   newPrice,
		CalculatedUsedPrice: used,
		DiscountPercentage:  discount,
		DiscountBreakdown:   map[string]float64{"usage": discount},
		PriceMetadata:       domain.PriceMetadata{Currency: currency},
	}
}

func TestFormatMultipleIssues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		phrases []string
		want    string
	}{
		{name: "none", phrases: nil, want: ""},
		{name: "one", phrases: []string{"a dent"}, want: "a dent"},
		{name: "two", phrases: []string{"a dent", "light wear"}, want: "a dent and light wear"},
		{name: "three", phrases: []string{"a dent", "light wear", "a chip"}, want: "a dent, light wear, and a chip"},
		{name: "four", phrases: []string{"a", "b", "c", "d"}, want: "a, b, c, and d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, narrative.FormatMultipleIssues(tt.phrases))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	g := narrative.NewGenerator()
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{amount: 1234.56, currency: "USD", want: "$1,234.56"},
		{amount: 780, currency: "EGP", want: "EGP 780.00"},
		{amount: 1250000.5, currency: "egp", want: "EGP 1,250,000.50"},
		{amount: 99.999, currency: "", want: "EGP 100.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, g.FormatPrice(tt.amount, tt.currency))
	}
}

func TestTemplates(t *testing.T) {
	t.Parallel()

	tpl := narrative.DefaultTemplates()

	assert.Equal(t, "light surface scratches", tpl.IssuePhrase("scratch", domain.SeverityMinor))
	assert.Equal(t, "severe screen burn", tpl.IssuePhrase("screen_burn", domain.SeveritySevere))
	assert.Equal(t, "moderate sticker residue", tpl.IssuePhrase("sticker_residue", domain.SeverityModerate))

	assert.Equal(t, "on the back panel", tpl.LocationPhrase("Back"))
	assert.Equal(t, "on the front screen top-left corner", tpl.LocationPhrase("front screen top-left corner"))
	assert.Empty(t, tpl.LocationPhrase("  "))

	assert.Equal(t, "The price reflects normal signs of use", tpl.DiscountExplanation(22))
	assert.Equal(t, "The condition is reflected in the pricing", tpl.DiscountExplanation(-1))

	_, ok := tpl.Closing(25)
	assert.False(t, ok)
	first, ok := tpl.Closing(30)
	require.True(t, ok)
	again, _ := tpl.Closing(30)
	assert.Equal(t, first, again)
}

func TestFullExplanation(t *testing.T) {
	t.Parallel()

	g := narrative.NewGenerator()
	cond := domain.ConditionSummary{
		OverallCondition: domain.ConditionGood,
		DetectedIssues: []domain.ConditionIssue{
			{Type: "scratch", Severity: domain.SeverityMinor, Location: "front screen", Confidence: 0.85},
		},
	}

	got := g.FullExplanation(cond, pricingResult(1000, 780, 22, "EGP"))
	assert.Equal(t,
		"This item is in good condition with light signs of normal use. "+
			"Minor imperfections include light surface scratches on the front screen. "+
			"The price reflects normal signs of use, with the price reduced to EGP 780.00 (22% off the original EGP 1,000.00).",
		got,
	)
}

func TestFullExplanation_ClausesAndPrefix(t *testing.T) {
	t.Parallel()

	g := narrative.NewGenerator()
	issues := []domain.ConditionIssue{
		{Type: "wear", Severity: domain.SeverityMinor, Location: "frame", Confidence: 1},
		{Type: "dent", Severity: domain.SeverityModerate, Location: "back", Confidence: 1},
		{Type: "crack", Severity: domain.SeveritySevere, Location: "screen", Confidence: 1},
		{Type: "scratch", Severity: domain.SeverityMinor, Location: "edge", Confidence: 1},
	}

	t.Run("no issues omits the issue clause", func(t *testing.T) {
		t.Parallel()
		got := g.FullExplanation(domain.ConditionSummary{OverallCondition: domain.ConditionExcellent}, pricingResult(500, 450, 10, "USD"))
		assert.NotContains(t, got, "include")
		assert.NotContains(t, got, "  ")
		assert.Contains(t, got, "$450.00 (10% off the original $500.00)")
	})

	t.Run("severe issues prefix and three issues", func(t *testing.T) {
		t.Parallel()
		got := g.FullExplanation(domain.ConditionSummary{OverallCondition: domain.ConditionFair, DetectedIssues: issues}, pricingResult(1000, 550, 45, "EGP"))
		assert.Contains(t, got, "Notable defects include a significant crack on the screen, a noticeable dent on the back panel, and light surface scratches along the edge.")
		assert.NotContains(t, got, "light wear")
		assert.True(t, strings.HasSuffix(got, "This is an excellent opportunity for budget-conscious buyers."))
	})

	t.Run("moderate prefix", func(t *testing.T) {
		t.Parallel()
		got := g.IssueDescription(issues[:2])
		assert.Equal(t, "The item shows a noticeable dent on the back panel and light wear on the frame.", got)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		cond := domain.ConditionSummary{OverallCondition: domain.ConditionPoor, DetectedIssues: issues}
		p := pricingResult(1000, 300, 70, "EGP")
		assert.Equal(t, g.FullExplanation(cond, p), g.FullExplanation(cond, p))
	})
}

func TestShortSummary(t *testing.T) {
	t.Parallel()

	g := narrative.NewGenerator()

	got := g.ShortSummary(domain.ConditionSummary{
		OverallCondition: domain.ConditionGood,
		DetectedIssues: []domain.ConditionIssue{
			{Type: "scratch", Severity: domain.SeverityMinor, Confidence: 1},
			{Type: "dent", Severity: domain.SeverityModerate, Confidence: 1},
		},
	}, pricingResult(1000, 750, 25, "EGP"))
	assert.Equal(t, "Good condition with a noticeable dent. Priced 25% below retail.", got)

	got = g.ShortSummary(domain.ConditionSummary{OverallCondition: domain.ConditionExcellent}, pricingResult(1000, 900, 10, "EGP"))
	assert.Equal(t, "Excellent condition. Priced 10% below retail.", got)
}

func TestBulletPoints_NoIssues(t *testing.T) {
	t.Parallel()

	g := narrative.NewGenerator()
	got := g.BulletPoints(domain.ConditionSummary{
		OverallCondition: domain.ConditionExcellent,
		DetectedIssues:   []domain.ConditionIssue{},
	}, pricingResult(1000, 900, 10, "EGP"))

	require.Len(t, got, 2)
	assert.Equal(t, "Condition: Excellent", got[0])
	assert.Equal(t, "Price: EGP 900.00 (10% discount)", got[1])
}

func TestBulletPoints_CapsIssueNotes(t *testing.T) {
	t.Parallel()

	g := narrative.NewGenerator()
	issues := make([]domain.ConditionIssue, 5)
	for i := range issues {
		issues[i] = domain.ConditionIssue{Type: "scratch", Severity: domain.SeverityMinor, Location: "back", Confidence: 1}
	}
	got := g.BulletPoints(domain.ConditionSummary{OverallCondition: domain.ConditionFair, DetectedIssues: issues}, pricingResult(100, 60, 40, "EGP"))

	require.Len(t, got, 5)
	assert.Equal(t, "Note: Light surface scratches on the back panel", got[1])
}

func TestReport(t *testing.T) {
	t.Parallel()

	g := narrative.NewGenerator(narrative.WithCurrency("USD"))
	got := g.Report(domain.ConditionSummary{OverallCondition: domain.ConditionGood}, pricingResult(1000, 780, 22, ""))

	assert.Equal(t, "Good value for a well-maintained item", got.ValueProposition)
	assert.Contains(t, got.FullExplanation, "$780.00")
	assert.NotEmpty(t, got.ShortSummary)
	assert.Len(t, got.BulletPoints, 2)
}

func TestReport_WithoutPrice(t *testing.T) {
	t.Parallel()

	g := narrative.NewGenerator()
	cond := domain.ConditionSummary{
		OverallCondition: domain.ConditionFair,
		DetectedIssues: []domain.ConditionIssue{
			{Type: "dent", Severity: domain.SeverityModerate, Location: "back", Confidence: 1},
		},
	}

	var got domain.ReportText
	require.NotPanics(t, func() { got = g.Report(cond, nil) })

	assert.NotEmpty(t, got.FullExplanation)
	assert.Equal(t, g.FullExplanation(cond, nil), got.FullExplanation)
	assert.NotContains(t, got.FullExplanation, "EGP")
	assert.Equal(t, "Fair condition with a noticeable dent.", got.ShortSummary)
	assert.Equal(t, []string{"Condition: Fair", "Note: A noticeable dent on the back panel"}, got.BulletPoints)
	assert.Empty(t, got.ValueProposition)
	assert.Empty(t, g.PriceJustification(nil))
}
