package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "meligw-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "meligw-recording",
					Rules: []Rule{
						{
							Record: "meligw:http_requests:rate5m",
							Expr:   `sum(rate(meligw_http_requests_total[5m]))`,
						},
						{
							Record: "meligw:http_errors:rate5m",
							Expr:   `sum(rate(meligw_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "meligw:meli_api_calls:rate5m",
							Expr:   `sum(rate(meligw_meli_api_calls_total[5m]))`,
						},
						{
							Record: "meligw:meli_api_errors:rate5m",
							Expr:   `sum(rate(meligw_meli_api_errors_total[5m]))`,
						},
						{
							Record: "meligw:token_refreshes:rate5m",
							Expr:   `sum(rate(meligw_token_refresh_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
