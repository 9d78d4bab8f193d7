package engine

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/metrics"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/condition"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/report"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// WorkflowRequest is a full condition-to-report pricing request.
type WorkflowRequest struct {
	ProductName string
	ProductType string
	UsageYears  float64
	Analysis    condition.Analysis
}

// ProductInfo echoes the parsed product identity.
type ProductInfo struct {
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	Type       string  `json:"type"`
	UsageYears float64 `json:"usage_years"`
}

// WorkflowResult is the assembled workflow response.
type WorkflowResult struct {
	Success           bool                     `json:"success"`
	DataSource        string                   `json:"data_source"`
	ProductInfo       ProductInfo              `json:"product_info"`
	CVAnalysis        domain.ConditionSummary  `json:"cv_analysis"`
	ProductSpecs      domain.ProductSpecs      `json:"product_specs"`
	Pricing           *domain.PricingResult    `json:"pricing"`
	PricingValidation domain.PricingValidation `json:"pricing_validation"`
	Report            domain.BilingualReport   `json:"report"`
	Warnings          []string                 `json:"warnings,omitempty"`
}

// PricingOnlyResult is a quick price for a product assumed in good
// condition.
type PricingOnlyResult struct {
	Success     bool                  `json:"success"`
	ProductInfo ProductInfo           `json:"product_info"`
	Pricing     *domain.PricingResult `json:"pricing"`
}

// SplitProductName splits a product name into brand and model on the first
// whitespace. A single word is used as both.
func SplitProductName(name string) (brand, model string) {
	name = strings.TrimSpace(name)
	brand, model, ok := strings.Cut(name, " ")
	if !ok {
		return name, name
	}
	return brand, strings.TrimSpace(model)
}

// PriceItem runs the full pipeline: evaluate the condition, look up specs,
// price the item, sanity check the price and write a bilingual report. A
// missing reference price is returned as pricing.ErrPriceNotFound; every
// other collaborator failure degrades to a local fallback.
func (eng *Engine) PriceItem(ctx context.Context, req WorkflowRequest) (*WorkflowResult, error) {
	start := time.Now()
	defer func() {
		metrics.WorkflowDuration.Observe(time.Since(start).Seconds())
	}()

	brand, model := SplitProductName(req.ProductName)
	ctx, span := eng.tracer.Start(ctx, "engine.PriceItem", trace.WithAttributes(
		attribute.String("product.name", req.ProductName),
		attribute.String("product.type", req.ProductType),
	))
	defer span.End()

	summary := eng.evaluate(ctx, req.Analysis, req.UsageYears)
	specs := eng.ExtractSpecs(ctx, brand, model, req.ProductType)

	priced, err := eng.CalculatePrice(ctx, PriceRequest{
		Brand:     brand,
		Model:     model,
		Category:  req.ProductType,
		Condition: summary,
	})
	if err != nil {
		return nil, err
	}

	validation := eng.validate(ctx, priced, summary)

	bilingual := eng.bilingual(ctx, report.Input{
		Brand:       brand,
		Model:       model,
		ProductName: req.ProductName,
		Currency:    priced.PriceMetadata.Currency,
		Condition:   summary,
		Pricing:     priced,
		Specs:       &specs,
	})

	result := &WorkflowResult{
		Success:    true,
		DataSource: priced.PriceMetadata.Source,
		ProductInfo: ProductInfo{
			Name:       req.ProductName,
			Brand:      brand,
			Model:      model,
			Type:       req.ProductType,
			UsageYears: req.UsageYears,
		},
		CVAnalysis:        summary,
		ProductSpecs:      specs,
		Pricing:           priced,
		PricingValidation: validation,
		Report:            bilingual,
	}
	if !validation.Valid {
		result.Warnings = validation.Warnings
	}

	eng.log.Info("item priced",
		"brand", brand,
		"model", model,
		"source", priced.PriceMetadata.Source,
		"used_price", priced.CalculatedUsedPrice,
		"discount", priced.DiscountPercentage,
		"report_status", bilingual.Status,
	)
	return result, nil
}

// PricingOnly prices a product assuming good condition and no issues.
func (eng *Engine) PricingOnly(
	ctx context.Context,
	productName, productType string,
	usageYears float64,
) (*PricingOnlyResult, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.PricingOnly")
	defer span.End()

	brand, model := SplitProductName(productName)
	priced, err := eng.CalculatePrice(ctx, PriceRequest{
		Brand:     brand,
		Model:     model,
		Category:  productType,
		Condition: condition.DefaultSummary(usageYears),
	})
	if err != nil {
		return nil, err
	}
	return &PricingOnlyResult{
		Success: true,
		ProductInfo: ProductInfo{
			Name:       productName,
			Brand:      brand,
			Model:      model,
			Type:       productType,
			UsageYears: usageYears,
		},
		Pricing: priced,
	}, nil
}

func (eng *Engine) evaluate(ctx context.Context, raw condition.Analysis, usageYears float64) domain.ConditionSummary {
	_, span := eng.tracer.Start(ctx, "engine.Evaluate", trace.WithAttributes(
		attribute.Int("condition.views", len(raw)),
	))
	defer span.End()

	summary := eng.evaluator.Evaluate(raw, usageYears).WithUsageYears(usageYears)
	span.SetAttributes(
		attribute.String("condition.overall", string(summary.OverallCondition)),
		attribute.Float64("condition.score", summary.ConditionScore),
		attribute.Int("condition.issues", len(summary.DetectedIssues)),
	)
	return summary
}

// validate checks the price against the lowest market offer when the
// reference came from a web search.
func (eng *Engine) validate(
	ctx context.Context,
	priced *domain.PricingResult,
	summary domain.ConditionSummary,
) domain.PricingValidation {
	_, span := eng.tracer.Start(ctx, "engine.ValidatePricing")
	defer span.End()

	var market *float64
	if sd := priced.SearchDetails; sd != nil && sd.BestDeal != nil {
		p := sd.BestDeal.Price
		market = &p
	}
	v := pricing.ValidatePricing(priced.CalculatedUsedPrice, priced.ReferenceNewPrice, market, summary.OverallCondition)
	span.SetAttributes(
		attribute.Bool("pricing.valid", v.Valid),
		attribute.Int("pricing.warnings", len(v.Warnings)),
	)
	if !v.Valid {
		eng.log.Warn("pricing validation warnings", "warnings", v.Warnings)
	}
	return v
}

func (eng *Engine) bilingual(ctx context.Context, in report.Input) domain.BilingualReport {
	ctx, span := eng.tracer.Start(ctx, "engine.BilingualReport")
	defer span.End()

	out := eng.reports.Bilingual(ctx, in)
	metrics.ReportsTotal.WithLabelValues("bilingual", out.Status).Inc()
	span.SetAttributes(attribute.String("report.status", out.Status))
	return out
}
