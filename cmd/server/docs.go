// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package main

// General API information for swag. Regenerate the docs package with:
//
//	swag init -g cmd/server/docs.go -o docs --parseDependency --parseInternal
//
// @title Reelscope API
// @version 1.0
// @description Interactive analytics over a streaming catalog: titles per country on a world map, release counts per category and year, and per-director or per-actor releases.
// @description
// @description ## Responses
// @description
// @description Every JSON response uses the same envelope:
// @description ```json
// @description {
// @description   "status": "success",
// @description   "data": {},
// @description   "metadata": {"timestamp": "2026-01-01T00:00:00Z", "cached": true, "request_id": "..."}
// @description }
// @description ```
// @description Errors set `status` to `error` and carry `error.code` and `error.message`.
// @description
// @description ## Rate Limiting
// @description
// @description Per-IP limits apply to chart, export and session endpoints. Exceeding them answers 429 with code `RATE_LIMIT_EXCEEDED`.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reelscope/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3857
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness, readiness and session counts
//
// @tag.name Catalog
// @tag.description Dataset summary, selectable features and column options
//
// @tag.name Charts
// @tag.description Plotly figures for the three dashboard pages
//
// @tag.name Pages
// @tag.description Page list and initial widget state
//
// @tag.name Export
// @tag.description Downloads of the categorical count table
//
// @tag.name Sessions
// @tag.description Live dashboard sessions over WebSocket
