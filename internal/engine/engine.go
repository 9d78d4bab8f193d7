// Package engine orchestrates condition evaluation, reference price
// resolution, depreciation, specification lookup and report writing.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/metrics"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/specs"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/store"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/condition"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/narrative"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/report"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

const tracerName = "github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"

// ErrSearchDisabled is returned by SearchPrice when no web search API key is
// configured.
var ErrSearchDisabled = errors.New("web price search is not configured")

// PriceSearcher finds market prices on the web.
type PriceSearcher interface {
	SearchPrice(ctx context.Context, brand, model, category string) (*domain.PriceQuote, error)
	Enabled() bool
}

// SpecsExtractor looks up product specifications. Extract never fails; it
// returns a placeholder instead.
type SpecsExtractor interface {
	Extract(ctx context.Context, brand, model, category string) domain.ProductSpecs
	Enabled() bool
}

// ReportWriter writes LLM reports with template fallback.
type ReportWriter interface {
	Markdown(ctx context.Context, in report.Input) (string, bool)
	Bilingual(ctx context.Context, in report.Input) domain.BilingualReport
	Enabled() bool
	Backend() string
}

// Engine is the integration orchestrator. It is safe for concurrent use.
type Engine struct {
	store     store.Store
	searcher  PriceSearcher
	specs     SpecsExtractor
	reports   ReportWriter
	evaluator *condition.Evaluator
	text      *narrative.Generator
	calc      *pricing.Calculator
	tracer    trace.Tracer
	log       *slog.Logger

	cacheTTL time.Duration
	currency string
	now      func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithSearcher enables the web search tier.
func WithSearcher(s PriceSearcher) EngineOption {
	return func(e *Engine) {
		e.searcher = s
	}
}

// WithSpecsExtractor sets the specification lookup.
func WithSpecsExtractor(s SpecsExtractor) EngineOption {
	return func(e *Engine) {
		e.specs = s
	}
}

// WithReportWriter sets the report writer.
func WithReportWriter(r ReportWriter) EngineOption {
	return func(e *Engine) {
		e.reports = r
	}
}

// WithCacheTTL sets how long cached web prices stay fresh.
func WithCacheTTL(ttl time.Duration) EngineOption {
	return func(e *Engine) {
		if ttl > 0 {
			e.cacheTTL = ttl
		}
	}
}

// WithCurrency sets the default currency.
func WithCurrency(currency string) EngineOption {
	return func(e *Engine) {
		if currency != "" {
			e.currency = currency
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithTracerProvider sets the provider spans are created from.
func WithTracerProvider(tp trace.TracerProvider) EngineOption {
	return func(e *Engine) {
		e.tracer = tp.Tracer(tracerName)
	}
}

// NewEngine creates an Engine over a price store. Web search, specs and
// LLM reports are optional and supplied through options.
func NewEngine(s store.Store, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:     s,
		evaluator: condition.NewEvaluator(),
		tracer:    otel.Tracer(tracerName),
		log:       slog.Default(),
		cacheTTL:  pricing.DefaultCacheTTL,
		currency:  pricing.DefaultCurrency,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.reports == nil {
		eng.reports = report.NewGenerator(report.WithLogger(eng.log))
	}
	eng.text = narrative.NewGenerator(narrative.WithCurrency(eng.currency))

	calcOpts := []pricing.Option{
		pricing.WithPriceBook(s),
		pricing.WithPriceCache(evictionCounter{s}, eng.cacheTTL),
	}
	if eng.searchEnabled() {
		calcOpts = append(calcOpts, pricing.WithMarketSearcher(eng.searcher))
	}
	calcOpts = append(calcOpts,
		pricing.WithCurrency(eng.currency),
		pricing.WithClock(func() time.Time { return eng.now() }),
		pricing.WithObserver(func(tier, outcome string) {
			metrics.PriceResolutionsTotal.WithLabelValues(tier, outcome).Inc()
		}),
		pricing.WithLogger(eng.log),
	)
	eng.calc = pricing.NewCalculator(calcOpts...)

	return eng
}

// Features reports which optional collaborators are active.
type Features struct {
	WebSearch  bool `json:"web_search"`
	LLMReports bool `json:"llm_reports"`
	Specs      bool `json:"specs"`
}

// Features returns the active optional collaborators.
func (eng *Engine) Features() Features {
	return Features{
		WebSearch:  eng.searchEnabled(),
		LLMReports: eng.reports.Enabled(),
		Specs:      eng.specs != nil && eng.specs.Enabled(),
	}
}

// Tiers lists the reference price resolvers in order.
func (eng *Engine) Tiers() []string {
	return eng.calc.Tiers()
}

// Evaluate builds a condition summary from a raw per-view analysis.
func (eng *Engine) Evaluate(raw condition.Analysis, usageYears float64) domain.ConditionSummary {
	return eng.evaluator.Evaluate(raw, usageYears)
}

// PriceRequest asks for a used price.
type PriceRequest struct {
	Brand          string
	Model          string
	Category       string
	ReferencePrice *float64
	Condition      domain.ConditionSummary
}

// CalculatePrice resolves a reference price and applies depreciation. It
// returns an error wrapping pricing.ErrPriceNotFound when every tier misses.
func (eng *Engine) CalculatePrice(ctx context.Context, req PriceRequest) (*domain.PricingResult, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.CalculatePrice", trace.WithAttributes(
		attribute.String("product.brand", req.Brand),
		attribute.String("product.model", req.Model),
		attribute.String("product.category", req.Category),
	))
	defer span.End()

	result, err := eng.calc.Calculate(ctx, pricing.Request{
		Brand:          req.Brand,
		Model:          req.Model,
		Category:       req.Category,
		ReferencePrice: req.ReferencePrice,
		Condition:      req.Condition,
	})
	if err != nil {
		if errors.Is(err, pricing.ErrPriceNotFound) {
			metrics.PriceNotFoundTotal.Inc()
			span.SetAttributes(attribute.Bool("price.found", false))
		} else {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}

	metrics.DiscountPercentage.Observe(result.DiscountPercentage)
	span.SetAttributes(
		attribute.Bool("price.found", true),
		attribute.String("price.source", result.PriceMetadata.Source),
		attribute.Float64("price.discount", result.DiscountPercentage),
	)
	return result, nil
}

// Explanation formats.
const (
	FormatFull    = "full"
	FormatShort   = "short"
	FormatBullets = "bullets"
)

// ExplainRequest asks for a text explanation. Pricing is computed when nil.
type ExplainRequest struct {
	PriceRequest
	Pricing *domain.PricingResult
	Format  string
}

// ConditionOverview is the compact condition echo in explanation and report
// responses.
type ConditionOverview struct {
	Overall    domain.Condition `json:"overall"`
	Score      float64          `json:"score"`
	IssueCount int              `json:"issue_count"`
}

// PricingOverview is the compact pricing echo in explanation responses.
type PricingOverview struct {
	OriginalPrice      float64  `json:"original_price"`
	UsedPrice          float64  `json:"used_price"`
	DiscountPercentage float64  `json:"discount_percentage"`
	DiscountBreakdown  []string `json:"discount_breakdown"`
}

// Explanation is a rendered price justification.
type Explanation struct {
	// Explanation is a string for the full and short formats and a list of
	// lines for bullets.
	Explanation      any               `json:"explanation"`
	Pricing          PricingOverview   `json:"pricing"`
	ValueProposition string            `json:"value_proposition"`
	ConditionSummary ConditionOverview `json:"condition_summary"`
}

// Explain renders a price justification in the requested format.
func (eng *Engine) Explain(ctx context.Context, req ExplainRequest) (*Explanation, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.Explain", trace.WithAttributes(
		attribute.String("explanation.format", req.Format),
	))
	defer span.End()

	priced := req.Pricing
	if priced == nil {
		var err error
		priced, err = eng.CalculatePrice(ctx, req.PriceRequest)
		if err != nil {
			return nil, err
		}
	}

	cond := req.Condition
	var text any
	switch req.Format {
	case FormatShort:
		text = eng.text.ShortSummary(cond, priced)
	case FormatBullets:
		text = eng.text.BulletPoints(cond, priced)
	default:
		text = eng.text.FullExplanation(cond, priced)
	}

	return &Explanation{
		Explanation: text,
		Pricing: PricingOverview{
			OriginalPrice:      priced.ReferenceNewPrice,
			UsedPrice:          priced.CalculatedUsedPrice,
			DiscountPercentage: priced.DiscountPercentage,
			DiscountBreakdown:  pricing.Explain(priced.DiscountBreakdown),
		},
		ValueProposition: pricing.ValueProposition(priced.DiscountPercentage),
		ConditionSummary: overview(cond),
	}, nil
}

// ReportRequest asks for a markdown pricing report.
type ReportRequest struct {
	PriceRequest
	UseLLM bool
}

// ReportMetadata describes how a report was produced.
type ReportMetadata struct {
	GeneratedBy string    `json:"generated_by"` // llm, template
	Backend     string    `json:"backend"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Category    string    `json:"category,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Report is a markdown pricing report with its inputs.
type Report struct {
	Report           string                `json:"report"`
	Pricing          *domain.PricingResult `json:"pricing"`
	ConditionSummary ConditionOverview     `json:"condition_summary"`
	Metadata         ReportMetadata        `json:"metadata"`
}

// Report prices the item and writes a markdown report. The LLM is used only
// when requested and configured; otherwise, or on failure, the template
// report is returned.
func (eng *Engine) Report(ctx context.Context, req ReportRequest) (*Report, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.Report", trace.WithAttributes(
		attribute.Bool("report.use_llm", req.UseLLM),
	))
	defer span.End()

	priced, err := eng.CalculatePrice(ctx, req.PriceRequest)
	if err != nil {
		return nil, err
	}

	in := report.Input{
		Brand:     req.Brand,
		Model:     req.Model,
		Currency:  priced.PriceMetadata.Currency,
		Condition: req.Condition,
		Pricing:   priced,
	}

	var (
		text      string
		generated bool
	)
	if req.UseLLM {
		text, generated = eng.reports.Markdown(ctx, in)
	} else {
		text = report.FallbackMarkdown(in)
	}

	meta := ReportMetadata{
		GeneratedBy: "template",
		Backend:     "none",
		Brand:       req.Brand,
		Model:       req.Model,
		Category:    req.Category,
		GeneratedAt: eng.now().UTC(),
	}
	status := report.StatusFallback
	if generated {
		meta.GeneratedBy = "llm"
		meta.Backend = eng.reports.Backend()
		status = report.StatusGenerated
	}
	metrics.ReportsTotal.WithLabelValues("markdown", status).Inc()
	span.SetAttributes(attribute.String("report.status", status))

	return &Report{
		Report:           text,
		Pricing:          priced,
		ConditionSummary: overview(req.Condition),
		Metadata:         meta,
	}, nil
}

// SearchPrice runs a web price search directly, bypassing the database and
// cache tiers.
func (eng *Engine) SearchPrice(ctx context.Context, brand, model, category string) (*domain.PriceQuote, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.SearchPrice")
	defer span.End()

	if !eng.searchEnabled() {
		return nil, ErrSearchDisabled
	}
	quote, err := eng.searcher.SearchPrice(ctx, brand, model, category)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, fmt.Errorf("searching %s %s: %w", brand, model, err)
	}
	return quote, nil
}

// ExtractSpecs looks up product specifications, returning the placeholder
// when lookup is unavailable.
func (eng *Engine) ExtractSpecs(ctx context.Context, brand, model, category string) domain.ProductSpecs {
	ctx, span := eng.tracer.Start(ctx, "engine.ExtractSpecs")
	defer span.End()

	if eng.specs == nil {
		return specs.Placeholder(strings.TrimSpace(brand + " " + model))
	}
	found := eng.specs.Extract(ctx, brand, model, category)
	span.SetAttributes(attribute.String("specs.status", found.ExtractionStatus))
	return found
}

func (eng *Engine) searchEnabled() bool {
	return eng.searcher != nil && eng.searcher.Enabled()
}

func overview(c domain.ConditionSummary) ConditionOverview {
	return ConditionOverview{
		Overall:    c.OverallCondition,
		Score:      c.ConditionScore,
		IssueCount: len(c.DetectedIssues),
	}
}

// evictionCounter counts lazy cache evictions made by the resolver chain.
type evictionCounter struct {
	pricing.PriceCache
}

func (c evictionCounter) EvictCachedPrice(ctx context.Context, key string, cachedAt time.Time) (bool, error) {
	removed, err := c.PriceCache.EvictCachedPrice(ctx, key, cachedAt)
	if err != nil {
		return false, err
	}
	if removed {
		metrics.CacheEvictionsTotal.Inc()
	}
	return removed, nil
}
