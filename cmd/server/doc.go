// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

/*
Command server runs the Reelscope dashboard: three interactive pages over a
streaming catalog (geographic distribution, categorical feature frequency,
and director and actor insights), served as a JSON API with live WebSocket
sessions.

Startup order:

 1. Configuration: Koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog, optionally teed to a lumberjack-rotated file
 3. Dataset: both CSV files are loaded once, concurrently. DATASET_LOADER
    selects the built-in CSV parser or DuckDB's read_csv for titles. Any
    missing file or malformed row aborts startup.
 4. Dashboard service and page binder
 5. WebSocket hub and optional response cache
 6. Supervisor tree: cache cleanup, session hub, HTTP server

# Configuration

	DATASET_TITLES_PATH         titles CSV (required)
	DATASET_COUNTRY_CODES_PATH  country name to ISO alpha-3 CSV (required)
	DATASET_LOADER              csv (default) or duckdb
	HTTP_HOST, HTTP_PORT        listen address (0.0.0.0:3857)
	LOG_LEVEL, LOG_FORMAT       info, json
	CACHE_ENABLED, CACHE_TTL    response cache for options and figures
	CACHE_MAX_ENTRIES           response cache capacity (LRU eviction)
	WS_MAX_SESSIONS             concurrent live sessions

See internal/config for the full list.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The supervisor stops the HTTP
server gracefully, closes every live session and exits.
*/
package main
