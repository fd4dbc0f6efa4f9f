// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package dashboard

import (
	"fmt"
	"sort"

	"github.com/tomtom215/reelscope/internal/catalog"
)

// CountRow is the number of titles sharing a release year and category value.
type CountRow struct {
	ReleaseYear int    `json:"release_year"`
	Category    string `json:"category"`
	Count       int    `json:"count"`
}

// CountTable is the result of AggregateCounts.
type CountTable struct {
	Column catalog.Column `json:"column"`
	Mode   string         `json:"mode"`
	Rows   []CountRow     `json:"rows"`
}

// YearCount is the number of titles released in one year.
type YearCount struct {
	ReleaseYear int `json:"release_year"`
	Count       int `json:"count"`
}

type countKey struct {
	year     int
	category string
}

// AggregateCounts groups the table by (release_year, column) and counts.
// Titles with no value in column are skipped. In ModeExplode each listed
// value is a separate occurrence. Rows are ordered by year, then category.
func AggregateCounts(t *catalog.Table, column catalog.Column, mode Mode) (CountTable, error) {
	if column == catalog.ColumnReleaseYear {
		return CountTable{}, fmt.Errorf("%w: cannot group release_year by itself", ErrUnknownColumn)
	}
	if err := checkColumn(column); err != nil {
		return CountTable{}, err
	}

	counts := make(map[countKey]int)
	t.Each(func(title *catalog.Title) {
		values(title, column, mode, func(v string) {
			counts[countKey{year: title.ReleaseYear, category: v}]++
		})
	})

	rows := make([]CountRow, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, CountRow{ReleaseYear: k.year, Category: k.category, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ReleaseYear != rows[j].ReleaseYear {
			return rows[i].ReleaseYear < rows[j].ReleaseYear
		}
		return rows[i].Category < rows[j].Category
	})

	return CountTable{Column: column, Mode: mode.String(), Rows: rows}, nil
}

// CountByYear counts titles per release year among those whose column lists
// value exactly (after explode when mode is ModeExplode).
func CountByYear(t *catalog.Table, column catalog.Column, mode Mode, value string) []YearCount {
	counts := make(map[int]int)
	t.Each(func(title *catalog.Title) {
		matched := false
		values(title, column, mode, func(v string) {
			if v == value {
				matched = true
			}
		})
		if matched {
			counts[title.ReleaseYear]++
		}
	})

	out := make([]YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, YearCount{ReleaseYear: y, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReleaseYear < out[j].ReleaseYear })
	return out
}
