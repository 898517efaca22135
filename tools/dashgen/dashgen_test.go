package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mercadoflow/meli-gateway/tools/dashgen/dashboards"
	"github.com/mercadoflow/meli-gateway/tools/dashgen/rules"
	"github.com/mercadoflow/meli-gateway/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestKnownMetrics_NamespacePrefix(t *testing.T) {
	t.Parallel()

	for name := range KnownMetrics {
		if name == "up" || name == "process_start_time_seconds" {
			continue
		}
		assert.True(t, strings.HasPrefix(name, "meligw"),
			"metric %s missing namespace prefix", name)
	}
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	// Verify dashboard metadata.
	require.NotNil(t, dash.Uid)
	assert.Equal(t, "meligw-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Meli Gateway Overview", *dash.Title)

	// Verify template variable.
	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Verify we have 5 rows.
	assert.Len(t, dash.Panels, 5)

	// Count total inner panels.
	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 15, totalPanels)

	// Validate PromQL and metrics.
	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "meligw-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "meligw-recording", group.Name)
	require.Len(t, group.Rules, 5)

	expectedRecords := []string{
		"meligw:http_requests:rate5m",
		"meligw:http_errors:rate5m",
		"meligw:meli_api_calls:rate5m",
		"meligw:meli_api_errors:rate5m",
		"meligw:token_refreshes:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)

	// Verify YAML marshaling works.
	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "meligw-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "meligw-alerts", group.Name)
	require.Len(t, group.Rules, 7)

	expectedAlerts := []string{
		"MeligwDown",
		"MeligwReadinessDown",
		"MeligwHighErrorRate",
		"MeligwUpstreamErrors",
		"MeligwQuotaHigh",
		"MeligwDailyLimitReached",
		"MeligwTokenRefreshFailures",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestValidate_CatchesUnknownMetric(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{
		Spec: rules.PrometheusRuleSpec{
			Groups: []rules.RuleGroup{
				{
					Name: "bad",
					Rules: []rules.Rule{
						{Record: "bad:rate5m", Expr: `rate(meligw_nonexistent_total[5m])`},
					},
				},
			},
		},
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "meligw_nonexistent_total")
}

func TestValidate_CatchesParseError(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{
		Spec: rules.PrometheusRuleSpec{
			Groups: []rules.RuleGroup{
				{
					Name: "bad",
					Rules: []rules.Rule{
						{Record: "bad:rate5m", Expr: `rate(meligw_http_requests_total[5m`},
					},
				},
			},
		},
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.False(t, result.Ok())
	require.Len(t, result.Errors, 1)
}
