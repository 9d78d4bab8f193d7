package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/logger"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/report"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/report/mocks"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

func sampleInput() report.Input {
	return report.Input{
		Brand: "Apple",
		Model: "iPhone 13",
		Condition: domain.ConditionSummary{
			OverallCondition: domain.ConditionGood,
			ConditionScore:   7.5,
			UsageYears:       0.8,
			DetectedIssues: []domain.ConditionIssue{
				{Type: "scratch", Severity: domain.SeverityMinor, Location: "front screen", Confidence: 0.85},
			},
		},
		Pricing: &domain.PricingResult{
			ReferenceNewPrice:   25000,
			CalculatedUsedPrice: 19500,
			DiscountPercentage:  22,
			DiscountBreakdown:   map[string]float64{"usage": 15, "condition": 5, "damage": 2},
			PriceMetadata:       domain.PriceMetadata{Source: domain.SourceWebSearch, Brand: "Apple", Model: "iPhone 13", Currency: "EGP"},
			SearchDetails: &domain.MarketStats{
				TotalResults: 4,
				StoresFound:  []string{"Amazon Egypt", "Noon Egypt"},
				PriceRange:   domain.PriceRange{Min: 24000, Max: 27000, Median: 25000},
				BestDeal:     &domain.MarketOffer{Store: "Noon Egypt", Price: 24000},
			},
		},
		Specs: &domain.ProductSpecs{
			ProductName:    "Apple iPhone 13",
			Specifications: map[string]string{"RAM": "4GB", "Display": "6.1 inch OLED"},
		},
	}
}

func TestRenderMarkdownPrompt(t *testing.T) {
	t.Parallel()

	got, err := report.RenderMarkdownPrompt(sampleInput())
	require.NoError(t, err)

	assert.Contains(t, got, "- Brand: Apple")
	assert.Contains(t, got, "- Condition: good (7.5/10)")
	assert.Contains(t, got, "- Minor scratch on front screen")
	assert.Contains(t, got, "- Original New Price: EGP 25,000.00")
	assert.Contains(t, got, "- Calculated Used Price: EGP 19,500.00")
	assert.Contains(t, got, "- Stores Checked: Amazon Egypt, Noon Egypt")
	assert.Contains(t, got, "- Price Range: EGP 24,000 - 27,000")
	assert.Contains(t, got, "- Best Deal: Noon Egypt at EGP 24,000.00")
}

func TestRenderMarkdownPrompt_WithoutMarketData(t *testing.T) {
	t.Parallel()

	in := sampleInput()
	in.Pricing.SearchDetails = nil
	in.Condition.DetectedIssues = nil

	got, err := report.RenderMarkdownPrompt(in)
	require.NoError(t, err)
	assert.NotContains(t, got, "MARKET RESEARCH")
	assert.NotContains(t, got, "ISSUES DETECTED")
}

func TestRenderBilingualPrompt(t *testing.T) {
	t.Parallel()

	got, err := report.RenderBilingualPrompt(sampleInput())
	require.NoError(t, err)
	assert.Contains(t, got, "- Display: 6.1 inch OLED\n- RAM: 4GB")
	assert.Contains(t, got, "Product: Apple iPhone 13")
	assert.Contains(t, got, "Usage: 0.8 years | Condition: good")
	assert.Contains(t, got, "Market Price: EGP 19,500.00")

	_, err = report.RenderBilingualPrompt(report.Input{})
	require.Error(t, err)
}

func TestSplitBilingual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		wantEN string
		wantAR string
	}{
		{name: "both markers", text: "[REPORT_EN]\nGreat phone.\n[REPORT_AR]\nهاتف رائع.", wantEN: "Great phone.", wantAR: "هاتف رائع."},
		{name: "preamble ignored", text: "Sure!\n[REPORT_EN] A [REPORT_AR] ب", wantEN: "A", wantAR: "ب"},
		{name: "english only", text: "[REPORT_EN] Only English", wantEN: "Only English"},
		{name: "no markers", text: "  plain text  ", wantEN: "plain text"},
		{name: "arabic marker only", text: "intro [REPORT_AR] عربي", wantEN: "intro", wantAR: "عربي"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			en, ar := report.SplitBilingual(tt.text)
			assert.Equal(t, tt.wantEN, en)
			assert.Equal(t, tt.wantAR, ar)
		})
	}
}

func TestGenerator_WithoutLLMUsesTemplates(t *testing.T) {
	t.Parallel()

	g := report.NewGenerator(report.WithLogger(logger.Discard()))
	assert.False(t, g.Enabled())
	assert.Equal(t, "none", g.Backend())

	md, generated := g.Markdown(context.Background(), sampleInput())
	assert.False(t, generated)
	assert.Contains(t, md, "# Apple iPhone 13 - Pricing Report")
	assert.Contains(t, md, "Our inspection identified 1 issue(s): minor scratch on front screen.")
	assert.Contains(t, md, "- **You Save:** 22% (EGP 5,500.00)")
	assert.Contains(t, md, "  - 15% for age and usage")

	bi := g.Bilingual(context.Background(), sampleInput())
	assert.Equal(t, report.StatusFallback, bi.Status)
	assert.Contains(t, bi.English, "Price: EGP 19,500.00")
	assert.Contains(t, bi.English, "• Display: 6.1 inch OLED")
	assert.Contains(t, bi.Arabic, "19,500.00 جنيه مصري")
}

func TestGenerator_NoIssuesFallback(t *testing.T) {
	t.Parallel()

	in := sampleInput()
	in.Condition.DetectedIssues = nil
	md := report.FallbackMarkdown(in)
	assert.Contains(t, md, "No significant issues were detected during inspection.")
}

func TestGenerator_Markdown_UsesLLM(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockLLMBackend(t)
	backend.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(r report.GenerateRequest) bool {
			return r.MaxTokens == 2048
		})).
		Return(report.GenerateResponse{Content: "  ## Generated  "}, nil).
		Once()

	g := report.NewGenerator(report.WithLLM(backend), report.WithLogger(logger.Discard()))
	md, generated := g.Markdown(context.Background(), sampleInput())
	assert.True(t, generated)
	assert.Equal(t, "## Generated", md)
}

func TestGenerator_FallsBackOnFailure(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockLLMBackend(t)
	backend.EXPECT().Name().Return("gemini").Maybe()
	backend.EXPECT().Generate(mock.Anything, mock.Anything).Return(report.GenerateResponse{}, errors.New("timeout")).Twice()

	g := report.NewGenerator(report.WithLLM(backend), report.WithLogger(logger.Discard()))

	md, generated := g.Markdown(context.Background(), sampleInput())
	assert.False(t, generated)
	assert.Contains(t, md, "## Pricing Analysis")

	bi := g.Bilingual(context.Background(), sampleInput())
	assert.Equal(t, report.StatusFallback, bi.Status)
	assert.NotEmpty(t, bi.Arabic)
}

func TestGenerator_Bilingual_MissingArabicFilledFromTemplate(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockLLMBackend(t)
	backend.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return(report.GenerateResponse{Content: "[REPORT_EN] English body"}, nil).
		Once()

	g := report.NewGenerator(report.WithLLM(backend))
	bi := g.Bilingual(context.Background(), sampleInput())
	assert.Equal(t, report.StatusGenerated, bi.Status)
	assert.Equal(t, "English body", bi.English)
	assert.Contains(t, bi.Arabic, "تقرير التقييم الاحترافي")
}
