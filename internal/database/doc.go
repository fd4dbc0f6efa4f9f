// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

// Package database provides the DuckDB-backed titles loader.
//
// With DATASET_LOADER=duckdb the titles CSV is parsed by DuckDB's read_csv
// inside an in-memory database instead of encoding/csv:
//
//	db, err := database.New(cfg.DuckDB)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	loader := catalog.NewLoader(afero.NewOsFs()).
//	    WithTitleReader(database.NewTitleReader(db))
//
// The database holds no tables; it exists only for the duration of the
// startup load. Query latency and failures are exported as
// duckdb_query_duration_seconds and duckdb_query_errors_total.
package database
