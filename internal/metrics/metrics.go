// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Dataset loading (CSV and DuckDB loaders)
// - Chart pipeline latency
// - API endpoint latency and throughput
// - Response cache efficiency
// - Live dashboard sessions (WebSocket + binding layer)

var (
	// Dataset Metrics
	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Number of rows loaded per reference table",
		},
		[]string{"table"}, // "titles", "country_codes"
	)

	DatasetLoadDuration = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_load_duration_seconds",
			Help: "Wall time of the startup dataset load",
		},
		[]string{"loader"}, // "csv", "duckdb"
	)

	// DuckDB Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation"},
	)

	// Chart Pipeline Metrics
	ChartBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chart_build_duration_seconds",
			Help:    "Time spent aggregating, filtering and building a chart",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"chart"}, // "categorical", "geo", "people"
	)

	ChartBuildErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chart_build_errors_total",
			Help: "Total number of chart builds that returned an error",
		},
		[]string{"chart"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "options", "charts"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	// WebSocket Metrics
	WSConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections_active",
			Help: "Current number of live dashboard sessions",
		},
	)

	WSConnectionsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_connections_rejected_total",
			Help: "Connections refused because the session limit was reached",
		},
	)

	WSMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_total",
			Help: "Total number of WebSocket frames by direction and type",
		},
		[]string{"direction", "type"}, // direction: "in", "out"
	)

	// Binding Layer Metrics
	BindingUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binding_updates_total",
			Help: "Total number of control changes applied to page sessions",
		},
		[]string{"page", "control", "result"}, // result: "ok", "invalid", "error"
	)
)

// RecordDatasetLoad records table sizes and load time after startup.
func RecordDatasetLoad(loader string, titles, countryCodes int, duration time.Duration) {
	DatasetRows.WithLabelValues("titles").Set(float64(titles))
	DatasetRows.WithLabelValues("country_codes").Set(float64(countryCodes))
	DatasetLoadDuration.WithLabelValues(loader).Set(duration.Seconds())
}

// RecordDBQuery records a DuckDB query metric
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordChartBuild records one pass of the chart pipeline
func RecordChartBuild(chart string, duration time.Duration, err error) {
	ChartBuildDuration.WithLabelValues(chart).Observe(duration.Seconds())
	if err != nil {
		ChartBuildErrors.WithLabelValues(chart).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup records a hit or miss on the named cache
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// TrackWSConnection adjusts the live session gauge
func TrackWSConnection(inc bool) {
	if inc {
		WSConnectionsActive.Inc()
	} else {
		WSConnectionsActive.Dec()
	}
}

// RecordWSMessage counts a WebSocket frame
func RecordWSMessage(direction, msgType string) {
	WSMessagesTotal.WithLabelValues(direction, msgType).Inc()
}

// RecordBindingUpdate counts a control change and its outcome
func RecordBindingUpdate(page, control, result string) {
	BindingUpdates.WithLabelValues(page, control, result).Inc()
}
