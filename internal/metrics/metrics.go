// Package metrics defines Prometheus metrics for meli-gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "meligw"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the liveness probe last succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the readiness probe last succeeded, 0 otherwise.",
	})
)

// MercadoLibre API metrics.
var (
	MeliAPICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meli_api_calls_total",
		Help:      "Total cumulative MercadoLibre API calls.",
	}, []string{"method"})

	MeliAPIErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meli_api_errors_total",
		Help:      "Total MercadoLibre API error responses by category.",
	}, []string{"category"})

	MeliDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "meli_daily_usage",
		Help:      "Current daily MercadoLibre API call count within the rolling 24-hour window.",
	})

	MeliDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meli_daily_limit_hits_total",
		Help:      "Total number of times the daily MercadoLibre API limit was reached.",
	})
)

// Token refresh metrics.
var (
	TokenRefreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of access-token refresh attempts.",
	})

	TokenRefreshFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_failures_total",
		Help:      "Total number of failed access-token refreshes.",
	})
)

// Category tree metrics.
var (
	CategoryTreeNodesVisited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_tree_nodes_visited_total",
		Help:      "Total category nodes expanded while building category trees.",
	})

	CategoryTreeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "category_tree_duration_seconds",
		Help:      "Duration of category tree builds in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
