package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ReportsByStatus returns a timeseries panel showing LLM report generation
// split by kind and whether the template fallback was used.
func ReportsByStatus() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Reports").
		Description("Markdown and bilingual reports, generated by the LLM or by the template fallback").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (kind, status) (rate(dpj_reports_total{job="pricing-justifier"}[5m]))`,
			"{{kind}} {{status}}", "A",
		)).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FallbackRatio returns a timeseries panel showing the share of reports that
// fell back to the template.
func FallbackRatio() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Report Fallback %").
		Description("Reports produced by the template because the LLM call failed or was disabled").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`dpj:report_fallback:ratio5m * 100`, "fallback %", "A")).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(10, 50)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SpecsExtractions returns a timeseries panel showing specification
// lookups by outcome.
func SpecsExtractions() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Specs Lookups").
		Description("Specification extraction attempts by status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum by (status) (rate(dpj_specs_extractions_total{job="pricing-justifier"}[5m]))`,
			"{{status}}", "A",
		)).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
