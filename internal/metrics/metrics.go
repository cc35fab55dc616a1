// Package metrics defines Prometheus metrics for storefront.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

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

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last /healthz check succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last /readyz check succeeded, 0 otherwise.",
	})
)

// Marketplace API metrics.
var (
	MarketplaceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketplace_requests_total",
		Help:      "Total marketplace API calls by operation and response status.",
	}, []string{"operation", "status"})

	TokenRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total OAuth token refresh attempts by result.",
	}, []string{"result"})

	AuthRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketplace_auth_retries_total",
		Help:      "Total requests retried after an authorization failure.",
	})
)

// Ingestion metrics.
var (
	IngestionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestions_total",
		Help:      "Total product ingestion attempts by result.",
	}, []string{"result"})

	IngestionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ingestion_duration_seconds",
		Help:      "Duration of product ingestions in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Catalog metrics.
var (
	CatalogQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_query_duration_seconds",
		Help:      "Duration of filtered product list queries in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Keepalive metrics.
var (
	KeepaliveLastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "keepalive_last_success_timestamp",
		Help:      "Unix timestamp of the last successful scheduled token refresh.",
	})

	KeepaliveNextRun = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "keepalive_next_run_timestamp",
		Help:      "Unix timestamp of the next scheduled token refresh.",
	})

	KeepaliveRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "keepalive_runs_total",
		Help:      "Total scheduled token refreshes by result.",
	}, []string{"result"})
)
