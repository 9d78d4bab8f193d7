package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheEvictions returns a timeseries panel showing expired cache entries
// removed per purge window.
func CacheEvictions() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cache Evictions").
		Description("Expired price cache entries removed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(dpj_cache_evictions_total{job="pricing-justifier"}[1h]))`,
			"evicted/h", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// LastPurge returns a stat panel showing time since the scheduled cache
// purge last ran.
func LastPurge() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Cache Purge").
		Description("Time since the scheduled purge of expired cache entries (default interval 6h)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`time() - dpj_cache_purge_last_run_timestamp{job="pricing-justifier"}`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(25200, 43200)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
