package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// TreeNodesRate returns a timeseries panel showing category nodes visited
// per second during tree traversals.
func TreeNodesRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Nodes Visited").
		Description("Category nodes fetched per second during tree builds").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(meligw_category_tree_nodes_visited_total{job="meli-gateway"}[5m]))`,
			"nodes/s", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TreeDuration returns a timeseries panel showing p50 and p95 category
// tree build durations.
func TreeDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Tree Build Duration").
		Description("Category tree build duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PercentileTarget("meligw_category_tree_duration_seconds", 0.50, "A")).
		WithTarget(PercentileTarget("meligw_category_tree_duration_seconds", 0.95, "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
