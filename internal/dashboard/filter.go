// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package dashboard

import "github.com/tomtom215/reelscope/internal/catalog"

// FilterCounts keeps rows with start <= release_year <= end whose category
// is in allowed. An empty allowed list selects nothing, and start > end
// selects nothing. Neither case is an error.
func FilterCounts(ct CountTable, start, end int, allowed []string) CountTable {
	out := CountTable{Column: ct.Column, Mode: ct.Mode, Rows: []CountRow{}}
	if len(allowed) == 0 || start > end {
		return out
	}

	set := make(map[string]struct{}, len(allowed))
	for _, c := range allowed {
		set[c] = struct{}{}
	}

	for _, r := range ct.Rows {
		if r.ReleaseYear < start || r.ReleaseYear > end {
			continue
		}
		if _, ok := set[r.Category]; !ok {
			continue
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

// FilterTitles returns the titles released within [start, end].
func FilterTitles(t *catalog.Table, start, end int) []catalog.Title {
	out := []catalog.Title{}
	if start > end {
		return out
	}
	t.Each(func(title *catalog.Title) {
		if title.ReleaseYear >= start && title.ReleaseYear <= end {
			out = append(out, *title)
		}
	})
	return out
}
