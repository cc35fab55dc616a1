// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/storefront/tools/dashgen/panels"
)

// UID is the stable identifier of the overview dashboard.
const UID = "storefront-overview"

// BuildOverview constructs the Storefront Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Storefront Overview").
		Uid(UID).
		Tags([]string{"storefront", "mercadolibre"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.IngestedToday()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RequestsByRoute()))

	b.WithRow(dashboard.NewRowBuilder("Marketplace").
		WithPanel(panels.MarketplaceCalls()).
		WithPanel(panels.TokenRefreshes()).
		WithPanel(panels.AuthRetries()))

	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.IngestionsByResult()).
		WithPanel(panels.IngestionDuration()).
		WithPanel(panels.CatalogQueryLatency()))

	b.WithRow(dashboard.NewRowBuilder("Token Keepalive").
		WithPanel(panels.LastKeepalive()).
		WithPanel(panels.NextKeepalive()).
		WithPanel(panels.KeepaliveFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
