// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

/*
Package api provides the HTTP surface of the catalog dashboard.

The router is built on chi and serves a JSON API under /api/v1 plus the
Prometheus scrape endpoint at /metrics and Swagger UI at /swagger/ (the
OpenAPI document is generated into the docs package from the @Summary
annotations on the handlers). Every JSON response uses the
models.APIResponse envelope: status, data, metadata and, on failure, an
error object with a stable code.

# Endpoints

Health:
  - GET /api/v1/health: dataset sizes, live session count, uptime
  - GET /api/v1/health/live: liveness probe
  - GET /api/v1/health/ready: readiness probe, 503 until the dataset is loaded

Catalog:
  - GET /api/v1/dataset: row counts, year range, loader and source paths
  - GET /api/v1/features: categorical features and people columns
  - GET /api/v1/options/{column}: distinct values of a column
  - GET /api/v1/options/years/end?start_year=N: end years not before N

Charts (figure plus the rows behind it):
  - GET /api/v1/charts/geo?start_year&end_year
  - GET /api/v1/charts/categorical?feature&categories&start_year&end_year
  - GET /api/v1/charts/people?column&person

Pages:
  - GET /api/v1/pages: page list in menu order
  - GET /api/v1/pages/{path}: initial widgets and figure of one page

Export:
  - GET /api/v1/export/counts.csv
  - GET /api/v1/export/counts.xlsx

Live sessions:
  - GET /api/v1/ws: WebSocket upgrade to a dashboard session driven by
    navigate and change messages

# Middleware

Applied to every request, in order: request ID, real IP, access log,
Prometheus metrics, panic recovery and CORS. The /api/v1 subtree adds
security headers, and each group carries its own httprate limit. Catalog
and chart responses are gzip-compressed.

# Caching

Option sets and figures are pure functions of the immutable dataset and the
normalized request, so they are cached by a key derived from both. Cached
responses report metadata.cached=true.
*/
package api
