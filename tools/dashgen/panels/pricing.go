package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ResolutionsByTier returns a timeseries panel showing reference price
// lookups per tier and outcome.
func ResolutionsByTier() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Price Lookups by Tier").
		Description("Reference price resolutions per tier (manual, database, cache, web_search) and outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`dpj:price_resolutions:rate5m`, "{{tier}} {{outcome}}", "A")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// HitShareByTier returns a bar gauge panel showing which tier answered the
// successful lookups over the last 24 hours.
func HitShareByTier() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Answering Tier (24h)").
		Description("Successful lookups by the tier that produced the price").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (tier) (increase(dpj_price_resolutions_total{job="pricing-justifier",outcome="hit"}[24h]))`,
			"{{tier}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// DiscountDistribution returns a bar gauge panel showing how computed
// discounts fall across the histogram buckets.
func DiscountDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Discount Distribution").
		Description("Computed discount percentages (0-90)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(dpj_discount_percentage_bucket{job="pricing-justifier"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// WorkflowDuration returns a timeseries panel showing p50 and p95 durations
// of full condition-to-report workflows.
func WorkflowDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Workflow Duration").
		Description("End-to-end workflow latency, dominated by web search and LLM calls").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(dpj_workflow_duration_seconds_bucket{job="pricing-justifier"}[5m])) by (le))`,
			"p50", "A",
		)).
		WithTarget(PromQuery(`dpj:workflow_duration:p95_5m`, "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Thresholds(ThresholdsGreenYellowRed(10, 30)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
