package main

import "errors"

// KnownMetrics is the set of metric names exported by meli-gateway
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"meligw_http_request_duration_seconds": true,
	"meligw_http_requests_total":           true,

	// Health metrics.
	"meligw_healthz_up": true,
	"meligw_readyz_up":  true,

	// MercadoLibre API metrics.
	"meligw_meli_api_calls_total":        true,
	"meligw_meli_api_errors_total":       true,
	"meligw_meli_daily_usage":            true,
	"meligw_meli_daily_limit_hits_total": true,

	// Token refresh metrics.
	"meligw_token_refresh_total":          true,
	"meligw_token_refresh_failures_total": true,

	// Category tree metrics.
	"meligw_category_tree_nodes_visited_total": true,
	"meligw_category_tree_duration_seconds":    true,

	// Recording rules.
	"meligw:http_requests:rate5m":   true,
	"meligw:http_errors:rate5m":     true,
	"meligw:meli_api_calls:rate5m":  true,
	"meligw:meli_api_errors:rate5m": true,
	"meligw:token_refreshes:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
