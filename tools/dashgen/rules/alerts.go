package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// meli-gateway operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "meligw-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "meligw-alerts",
					Rules: []Rule{
						{
							Alert: "MeligwDown",
							Expr:  `absent(up{job="meli-gateway"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "meli-gateway is down",
								"description": "The meli-gateway job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "MeligwReadinessDown",
							Expr:  `meligw_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "meli-gateway readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "MeligwHighErrorRate",
							Expr:  `meligw:http_errors:rate5m / meligw:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on meli-gateway",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "MeligwUpstreamErrors",
							Expr:  `meligw:meli_api_errors:rate5m / meligw:meli_api_calls:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Elevated MercadoLibre API error rate",
								"description": "More than 10% of MercadoLibre API calls are failing over the last 5 minutes.",
							},
						},
						{
							Alert: "MeligwQuotaHigh",
							Expr:  `meligw_meli_daily_usage > 8000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "MercadoLibre API daily usage is above 80% of the budget",
								"description": "Daily MercadoLibre API usage has exceeded 8000 calls (budget is 10000).",
							},
						},
						{
							Alert: "MeligwDailyLimitReached",
							Expr:  `increase(meligw_meli_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "MercadoLibre API daily budget has been exhausted",
								"description": "The daily call budget has been reached. Upstream calls fail until the window rolls over.",
							},
						},
						{
							Alert: "MeligwTokenRefreshFailures",
							Expr:  `increase(meligw_token_refresh_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "OAuth token refresh failures detected",
								"description": "One or more shop token refreshes against the MercadoLibre OAuth endpoint have failed.",
							},
						},
					},
				},
			},
		},
	}
}
