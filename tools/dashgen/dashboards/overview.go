// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/aliaa039/Dynamic-Pricing-Justification/tools/dashgen/panels"
)

// BuildOverview constructs the pricing service overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("DPJ Overview").
		Uid("dpj-overview").
		Tags([]string{"dpj", "pricing-justifier"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.SearchQuotaGauge()).
		WithPanel(panels.NotFoundStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.RequestsByEndpoint()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.PanicsRate()))

	b.WithRow(dashboard.NewRowBuilder("Pricing").
		WithPanel(panels.ResolutionsByTier()).
		WithPanel(panels.HitShareByTier()).
		WithPanel(panels.DiscountDistribution()).
		WithPanel(panels.WorkflowDuration()))

	b.WithRow(dashboard.NewRowBuilder("Web Search").
		WithPanel(panels.SearchCallsRate()).
		WithPanel(panels.SearchDailyUsage()).
		WithPanel(panels.SearchLimitHits()).
		WithPanel(panels.OffersExtracted()))

	b.WithRow(dashboard.NewRowBuilder("Cache").
		WithPanel(panels.CacheEvictions()).
		WithPanel(panels.LastPurge()))

	b.WithRow(dashboard.NewRowBuilder("Reports").
		WithPanel(panels.ReportsByStatus()).
		WithPanel(panels.FallbackRatio()).
		WithPanel(panels.SpecsExtractions()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
