package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	engineMocks "github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine/mocks"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/condition"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/report"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

func scratchedPhone() condition.Analysis {
	conf := 0.9
	return condition.Analysis{
		"front": {
			OverallCondition: "good",
			Issues: []condition.RawIssue{
				{Type: "scratch", Severity: "minor", Location: "screen", Confidence: &conf},
			},
		},
		"back": {OverallCondition: "excellent"},
	}
}

func TestSplitProductName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		wantBrand string
		wantModel string
	}{
		{name: "Apple iPhone 13", wantBrand: "Apple", wantModel: "iPhone 13"},
		{name: "  Samsung   Galaxy S21 ", wantBrand: "Samsung", wantModel: "Galaxy S21"},
		{name: "Nokia", wantBrand: "Nokia", wantModel: "Nokia"},
		{name: "", wantBrand: "", wantModel: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			brand, model := SplitProductName(tt.name)
			assert.Equal(t, tt.wantBrand, brand)
			assert.Equal(t, tt.wantModel, model)
		})
	}
}

func TestPriceItem_FullWorkflow(t *testing.T) {
	t.Parallel()

	specs := engineMocks.NewMockSpecsExtractor(t)
	specs.EXPECT().Extract(mock.Anything, "Apple", "iPhone 13", "phone").Return(domain.ProductSpecs{
		ProductName:      "Apple iPhone 13",
		Specifications:   map[string]string{"Storage": "128GB"},
		ExtractionStatus: domain.SpecsExtracted,
	})
	reports := engineMocks.NewMockReportWriter(t)
	reports.EXPECT().Bilingual(mock.Anything, mock.MatchedBy(func(in report.Input) bool {
		return in.ProductName == "Apple iPhone 13" &&
			in.Specs != nil && in.Specs.Specifications["Storage"] == "128GB" &&
			in.Pricing != nil
	})).Return(domain.BilingualReport{English: "Report", Arabic: "تقرير", Status: report.StatusGenerated})

	eng, ms := newTestEngine(t, WithSpecsExtractor(specs), WithReportWriter(reports))
	ms.EXPECT().GetPrice(mock.Anything, "apple_iphone_13").Return(iphoneRecord(), nil)

	got, err := eng.PriceItem(context.Background(), WorkflowRequest{
		ProductName: "Apple iPhone 13",
		ProductType: "phone",
		UsageYears:  1,
		Analysis:    scratchedPhone(),
	})
	require.NoError(t, err)

	assert.True(t, got.Success)
	assert.Equal(t, domain.SourceDatabase, got.DataSource)
	assert.Equal(t, ProductInfo{
		Name: "Apple iPhone 13", Brand: "Apple", Model: "iPhone 13", Type: "phone", UsageYears: 1,
	}, got.ProductInfo)

	assert.Equal(t, domain.ConditionGood, got.CVAnalysis.OverallCondition)
	assert.Equal(t, 1.0, got.CVAnalysis.UsageYears)
	assert.Len(t, got.CVAnalysis.DetectedIssues, 1)
	assert.Equal(t, []string{"back", "front"}, got.CVAnalysis.ViewsAnalyzed)

	// usage 25 + good 5 + one minor issue 2
	assert.Equal(t, 32.0, got.Pricing.DiscountPercentage)
	assert.Equal(t, 13600.0, got.Pricing.CalculatedUsedPrice)

	assert.True(t, got.PricingValidation.Valid)
	assert.Empty(t, got.Warnings)
	assert.Equal(t, domain.SpecsExtracted, got.ProductSpecs.ExtractionStatus)
	assert.Equal(t, report.StatusGenerated, got.Report.Status)
	assert.Equal(t, "تقرير", got.Report.Arabic)
}

func TestPriceItem_FallbacksWithoutCollaborators(t *testing.T) {
	t.Parallel()

	eng, ms := newTestEngine(t)
	ms.EXPECT().GetPrice(mock.Anything, "apple_iphone_13").Return(iphoneRecord(), nil)

	got, err := eng.PriceItem(context.Background(), WorkflowRequest{
		ProductName: "Apple iPhone 13",
		UsageYears:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SpecsFailed, got.ProductSpecs.ExtractionStatus)
	assert.Equal(t, report.StatusFallback, got.Report.Status)
	assert.NotEmpty(t, got.Report.English)
	assert.NotEmpty(t, got.Report.Arabic)
	assert.Equal(t, 7.0, got.CVAnalysis.ConditionScore)
}

func TestPriceItem_ValidationWarnings(t *testing.T) {
	t.Parallel()

	eng, ms := newTestEngine(t)
	ms.EXPECT().GetPrice(mock.Anything, "apple_iphone_13").Return(iphoneRecord(), nil)

	// usage 10 + poor 15 is below the discount expected for a poor item.
	got, err := eng.PriceItem(context.Background(), WorkflowRequest{
		ProductName: "Apple iPhone 13",
		UsageYears:  0.1,
		Analysis:    condition.Analysis{"front": {OverallCondition: "poor"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 25.0, got.Pricing.DiscountPercentage)
	assert.False(t, got.PricingValidation.Valid)
	assert.Equal(t, got.PricingValidation.Warnings, got.Warnings)
	require.Len(t, got.Warnings, 1)
	assert.Contains(t, got.Warnings[0], "low for poor condition")
}

func TestPriceItem_MarketWarning(t *testing.T) {
	t.Parallel()

	searcher := enabledSearcher(t)
	eng, ms := newTestEngine(t, WithSearcher(searcher))
	ms.EXPECT().GetPrice(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	ms.EXPECT().GetCachedPrice(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	ms.EXPECT().SetCachedPrice(mock.Anything, mock.Anything).Return(nil)
	searcher.EXPECT().SearchPrice(mock.Anything, "Apple", "iPhone 13", "").Return(&domain.PriceQuote{
		Price:    20000,
		Currency: "EGP",
		Market: &domain.MarketStats{
			TotalResults: 3,
			BestDeal:     &domain.MarketOffer{Store: "Jumia", Price: 12000},
		},
	}, nil)

	got, err := eng.PriceItem(context.Background(), WorkflowRequest{ProductName: "Apple iPhone 13", UsageYears: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceWebSearch, got.DataSource)
	assert.False(t, got.PricingValidation.Valid)
	require.Len(t, got.Warnings, 1)
	assert.Contains(t, got.Warnings[0], "above the lowest market offer")
}

func TestPriceItem_PriceNotFound(t *testing.T) {
	t.Parallel()

	reports := engineMocks.NewMockReportWriter(t)
	eng, ms := newTestEngine(t, WithReportWriter(reports))
	ms.EXPECT().GetPrice(mock.Anything, "acme_widget").Return(nil, domain.ErrNotFound)
	ms.EXPECT().GetCachedPrice(mock.Anything, "acme_widget_gadget").Return(nil, domain.ErrNotFound)

	got, err := eng.PriceItem(context.Background(), WorkflowRequest{
		ProductName: "Acme Widget",
		ProductType: "gadget",
		UsageYears:  2,
	})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, pricing.ErrPriceNotFound)
	reports.AssertNotCalled(t, "Bilingual", mock.Anything, mock.Anything)
}

func TestPriceItem_Spans(t *testing.T) {
	t.Parallel()

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	eng, ms := newTestEngine(t, WithTracerProvider(tp))
	ms.EXPECT().GetPrice(mock.Anything, "apple_iphone_13").Return(iphoneRecord(), nil)

	_, err := eng.PriceItem(context.Background(), WorkflowRequest{ProductName: "Apple iPhone 13", UsageYears: 1})
	require.NoError(t, err)

	var names []string
	var root sdktrace.ReadOnlySpan
	for _, s := range rec.Ended() {
		names = append(names, s.Name())
		if s.Name() == "engine.PriceItem" {
			root = s
		}
	}
	assert.ElementsMatch(t, []string{
		"engine.Evaluate",
		"engine.ExtractSpecs",
		"engine.CalculatePrice",
		"engine.ValidatePricing",
		"engine.BilingualReport",
		"engine.PriceItem",
	}, names)

	require.NotNil(t, root)
	for _, s := range rec.Ended() {
		if s.Name() != "engine.PriceItem" {
			assert.Equal(t, root.SpanContext().SpanID(), s.Parent().SpanID(), s.Name())
		}
	}
}

func TestPricingOnly(t *testing.T) {
	t.Parallel()

	eng, ms := newTestEngine(t)
	ms.EXPECT().GetPrice(mock.Anything, "apple_iphone_13").Return(iphoneRecord(), nil)

	got, err := eng.PricingOnly(context.Background(), "Apple iPhone 13", "phone", 2.5)
	require.NoError(t, err)

	assert.True(t, got.Success)
	assert.Equal(t, "Apple", got.ProductInfo.Brand)
	// usage 35 + good 5
	assert.Equal(t, 40.0, got.Pricing.DiscountPercentage)
	assert.Equal(t, 12000.0, got.Pricing.CalculatedUsedPrice)
	assert.Equal(t, 7.0, got.Pricing.PriceMetadata.ConditionScore)
}
