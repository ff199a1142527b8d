// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/localflipper/tools/dashgen/panels"
)

// UID is the stable dashboard identifier used in links and provisioning.
const UID = "lfl-overview"

// BuildOverview constructs the LocalFlipper Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("LocalFlipper Overview").
		Uid(UID).
		Tags([]string{"lfl", "localflipper"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.PanicsStat()))

	b.WithRow(dashboard.NewRowBuilder("eBay API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.ComparablesPerQuery()).
		WithPanel(panels.LimitHits()))

	b.WithRow(dashboard.NewRowBuilder("Search Runs").
		WithPanel(panels.SearchRunRate()).
		WithPanel(panels.RunDuration()).
		WithPanel(panels.ListingsRate()).
		WithPanel(panels.ListingsRejected()))

	b.WithRow(dashboard.NewRowBuilder("Evaluations").
		WithPanel(panels.VerdictRate()).
		WithPanel(panels.DemandMix()).
		WithPanel(panels.DealsFound()).
		WithPanel(panels.EvaluationErrors()).
		WithPanel(panels.ProfitDistribution()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
