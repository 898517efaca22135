package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RefreshRate returns a timeseries panel showing token refreshes per minute.
func RefreshRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refreshes / min").
		Description("Rate of OAuth token refreshes per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`meligw:token_refreshes:rate5m * 60`, "refreshes/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RefreshFailures returns a stat panel showing token refresh failures in
// the past 24 hours.
func RefreshFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Refresh Failures (24h)").
		Description("Failed OAuth token refreshes in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(meligw_token_refresh_failures_total{job="meli-gateway"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
