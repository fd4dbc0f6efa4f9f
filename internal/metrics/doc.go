// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed by the HTTP server at /metrics:

	curl http://localhost:3857/metrics

# Available Metrics

Dataset:
  - dataset_rows{table}: rows loaded at startup (gauge)
  - dataset_load_duration_seconds{loader}: startup load time (gauge)
  - duckdb_query_duration_seconds{operation}, duckdb_query_errors_total{operation}

Chart pipeline:
  - chart_build_duration_seconds{chart}: aggregate + filter + build (histogram)
  - chart_build_errors_total{chart}

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Cache:
  - cache_hits_total{cache_type}, cache_misses_total{cache_type}

Live sessions:
  - websocket_connections_active, websocket_connections_rejected_total
  - websocket_messages_total{direction,type}
  - binding_updates_total{page,control,result}

# Example Queries

	# p95 chart latency per page
	histogram_quantile(0.95, sum by (le, chart) (rate(chart_build_duration_seconds_bucket[5m])))

	# Cache hit ratio
	sum(rate(cache_hits_total[5m])) / (sum(rate(cache_hits_total[5m])) + sum(rate(cache_misses_total[5m])))
*/
package metrics
