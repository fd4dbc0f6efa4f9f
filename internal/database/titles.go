// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/reelscope/internal/catalog"
	"github.com/tomtom215/reelscope/internal/metrics"
)

// opReadTitles labels DuckDB metrics for the titles scan.
const opReadTitles = "read_titles"

// TitleReader parses the titles CSV with DuckDB's read_csv. It satisfies
// catalog.TitleReader and reads from the OS filesystem.
type TitleReader struct {
	db *DB
}

// NewTitleReader creates a reader backed by db.
func NewTitleReader(db *DB) *TitleReader {
	return &TitleReader{db: db}
}

var _ catalog.TitleReader = (*TitleReader)(nil)

// readCSVQuery builds the scan statement. Table function arguments cannot be
// bound as parameters, so the path is embedded as an escaped string literal.
func readCSVQuery(path string) string {
	literal := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	return "SELECT * FROM read_csv(" + literal +
		", header = true, all_varchar = true, quote = '\"', escape = '\"')"
}

// ReadTitles loads every row of the titles file. All values are read as text
// and converted through catalog.ParseTitleRecord, so both loaders apply the
// same trimming and release_year rules. Line numbers in errors assume one
// physical line per record.
func (r *TitleReader) ReadTitles(ctx context.Context, path string) (table *catalog.Table, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery(opReadTitles, time.Since(start), err)
	}()

	if _, statErr := os.Stat(path); statErr != nil {
		return nil, &catalog.StartupDataError{Path: path, Err: statErr}
	}

	rows, err := r.db.conn.QueryContext(ctx, readCSVQuery(path))
	if err != nil {
		return nil, &catalog.StartupDataError{Path: path, Err: err}
	}
	defer closeWithLog(rows, "rows")

	cols, err := rows.Columns()
	if err != nil {
		return nil, &catalog.StartupDataError{Path: path, Err: err}
	}
	if len(cols) != len(catalog.Columns) {
		return nil, &catalog.StartupDataError{
			Path: path,
			Line: 1,
			Err:  fmt.Errorf("expected %d columns, got %d", len(catalog.Columns), len(cols)),
		}
	}

	values := make([]sql.NullString, len(cols))
	dest := make([]interface{}, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	var titles []catalog.Title
	line := 1
	for rows.Next() {
		line++
		if err := rows.Scan(dest...); err != nil {
			return nil, &catalog.StartupDataError{Path: path, Line: line, Err: err}
		}
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = v.String
		}
		title, err := catalog.ParseTitleRecord(record)
		if err != nil {
			return nil, &catalog.StartupDataError{Path: path, Line: line, Err: err}
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, &catalog.StartupDataError{Path: path, Err: err}
	}

	table, err = catalog.NewTable(titles)
	if err != nil {
		return nil, &catalog.StartupDataError{Path: path, Err: err}
	}
	return table, nil
}
