package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// MarketplaceCalls returns a timeseries panel of MercadoLibre API calls by
// operation and response status.
func MarketplaceCalls() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Marketplace Calls").
		Description("MercadoLibre API calls per second by operation and status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(`+Sel("storefront_marketplace_requests_total")+`[5m])) by (operation, status)`,
			"{{operation}} {{status}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TokenRefreshes returns a bar gauge of token refresh outcomes over the last day.
func TokenRefreshes() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Token Refreshes (24h)").
		Description("OAuth refresh attempts by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(`+Sel("storefront_token_refreshes_total")+`[24h])) by (result)`,
			"{{result}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// AuthRetries returns a stat panel counting item fetches that needed a token
// refresh and retry.
func AuthRetries() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Auth Retries (1h)").
		Description("Item fetches retried after the access token was rejected").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(`+Sel("storefront_marketplace_auth_retries_total")+`[1h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(5, 20)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
