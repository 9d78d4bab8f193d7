package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SearchCallsRate returns a timeseries panel showing the web search API
// call rate.
func SearchCallsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Search Calls Rate").
		Description("SerpAPI calls per second, price and specs lookups combined").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`dpj:search_api_calls:rate5m`, "calls/s", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SearchDailyUsage returns a timeseries panel showing the rolling 24h
// search usage against the daily limit.
func SearchDailyUsage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Daily Usage vs Limit").
		Description(fmt.Sprintf("Rolling 24h web search call count (default limit: %d)", SearchDailyLimit)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`dpj_search_daily_usage{job="pricing-justifier"}`, "usage", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(float64(SearchDailyLimit)*0.8, float64(SearchDailyLimit))).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SearchLimitHits returns a stat panel showing how often the daily search
// limit rejected a call in the past 24 hours.
func SearchLimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Limit Hits (24h)").
		Description("Searches refused because the daily limit was reached").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`increase(dpj_search_daily_limit_hits_total{job="pricing-justifier"}[24h])`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// OffersExtracted returns a timeseries panel showing the median number of
// priced offers pulled from each search.
func OffersExtracted() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Offers per Search").
		Description("Median priced offers extracted from search snippets").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(dpj_search_results_extracted_bucket{job="pricing-justifier"}[15m])) by (le))`,
			"median", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
