package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// IngestionsByResult returns a timeseries panel of product ingestions per
// minute split by outcome.
func IngestionsByResult() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Ingestions / min").
		Description("Add-product attempts per minute by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(`+Sel("storefront_ingestions_total")+`[5m])) by (result) * 60`,
			"{{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// IngestionDuration returns a timeseries panel showing the p95 duration of
// an ingestion, marketplace fetch included.
func IngestionDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Ingestion Duration (p95)").
		Description("95th percentile add-product duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(P95("storefront_ingestion_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(2, 8)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CatalogQueryLatency returns a timeseries panel showing the p95 latency of
// filtered catalog queries.
func CatalogQueryLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Query (p95)").
		Description("95th percentile filtered product list query duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(P95("storefront_catalog_query_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.25, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
