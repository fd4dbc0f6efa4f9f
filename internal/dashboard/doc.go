// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

/*
Package dashboard implements the filtering, aggregation and chart pipeline
behind every dashboard page.

Every function in this package is a pure computation over the immutable
catalog.Dataset: it allocates fresh output and never mutates its input, so
callers may invoke it from any number of goroutines.

# Pipeline

	catalog.Table
	  -> GetOptions / YearOptions      widget option sets
	  -> AggregateCounts               (release_year, category) -> count
	  -> FilterCounts / FilterTitles   inclusive year range + category set
	  -> BarChart / Choropleth         Plotly figure JSON

The geo page uses CountryFrequency and JoinCountryCodes between the filter and
chart steps. Country names with no ISO alpha-3 code are dropped from the map.

# Empty Results

An empty category selection, or a start year after the end year, produces an
empty figure rather than an error:

	res, _ := svc.CategoricalChart(dashboard.CategoricalQuery{
		Feature:    catalog.ColumnRating,
		Categories: nil,
		StartYear:  2001,
		EndYear:    2021,
	})
	// len(res.Figure.Data) == 0

# Errors

ResolveLabel returns ErrOptionNotFound for a value that is not in the option
set. Callers that validate input against the option set first never see it.
ErrUnknownColumn is returned for columns that cannot be grouped or charted.
*/
package dashboard
