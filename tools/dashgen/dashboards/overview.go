// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/mercadoflow/meli-gateway/tools/dashgen/panels"
)

// BuildOverview constructs the Meli Gateway Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Meli Gateway Overview").
		Uid("meligw-overview").
		Tags([]string{"meligw", "meli-gateway"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: MercadoLibre API.
	b.WithRow(dashboard.NewRowBuilder("MercadoLibre API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APIErrorsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 4: Token Refresh.
	b.WithRow(dashboard.NewRowBuilder("Token Refresh").
		WithPanel(panels.RefreshRate()).
		WithPanel(panels.RefreshFailures()))

	// Row 5: Category Tree.
	b.WithRow(dashboard.NewRowBuilder("Category Tree").
		WithPanel(panels.TreeNodesRate()).
		WithPanel(panels.TreeDuration()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
