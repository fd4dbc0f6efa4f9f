// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

/*
Package config provides centralized configuration management for Reelscope.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (CONFIG_PATH, ./config.yaml, ./config.yml, /etc/reelscope/config.yaml),
then environment variables. Only the environment variables listed in the
transform table are read.

# Sections

  - Server: HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, ENVIRONMENT
  - Logging: LOG_LEVEL, LOG_FORMAT, LOG_CALLER, LOG_FILE and rotation limits
  - Dataset: DATASET_TITLES_PATH, DATASET_COUNTRY_CODES_PATH, DATASET_LOADER, DATASET_LOAD_WORKERS
  - DuckDB: DUCKDB_THREADS, DUCKDB_MAX_MEMORY
  - Dashboard: initial years, feature and people column for each page
  - Cache: CACHE_ENABLED, CACHE_TTL, CACHE_MAX_ENTRIES
  - Security: RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS
  - WebSocket: WS_MAX_SESSIONS, WS_ALLOWED_ORIGINS, WS_CHANGE_RATE, WS_CHANGE_BURST

# Example YAML

	server:
	  port: 3857
	dataset:
	  titles_path: /srv/data/netflix_titles.csv
	  loader: duckdb
	dashboard:
	  categorical_default_feature: rating

Validation errors name the environment variable that controls the value, so
operators can fix deployments without reading code.
*/
package config
