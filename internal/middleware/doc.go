// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

/*
Package middleware provides the HTTP middleware shared by the API router.

  - RequestID: X-Request-ID propagation plus request and correlation IDs on
    the context for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge labeled by
    chi route pattern
  - AccessLog: one zerolog line per request, warn on slow requests

All three wrap the response writer with chi's WrapResponseWriter, which
keeps http.Hijacker available so the /api/v1/ws upgrade passes through.

Order in the router:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
