package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// tokenLifetime is how long a MercadoLibre access token stays valid.
const tokenLifetime = 6 * 60 * 60

// LastKeepalive returns a stat panel showing time since the last successful
// scheduled token refresh.
func LastKeepalive() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Keepalive").
		Description("Time since the scheduled token refresh last succeeded").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(8).
		WithTarget(PromQuery(`time() - `+Sel("storefront_keepalive_last_success_timestamp"), "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(tokenLifetime/2, tokenLifetime)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// NextKeepalive returns a stat panel showing time until the next scheduled
// token refresh.
func NextKeepalive() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Keepalive").
		Description("Time until the next scheduled token refresh").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(8).
		WithTarget(PromQuery(Sel("storefront_keepalive_next_run_timestamp")+` - time()`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// KeepaliveFailures returns a stat panel counting failed scheduled refreshes
// over the last day.
func KeepaliveFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Keepalive Failures (24h)").
		Description("Scheduled token refreshes that failed in the last 24 hours").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(`+Sel("storefront_keepalive_runs_total", `result="failure"`)+`[24h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
