// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

/*
Package binding implements the reactive layer of the live dashboard.

Each page is a static, topologically ordered graph of nodes. A node names
the controls (or other nodes) it reads and recomputes one output: an option
set together with its default selection, or the page figure. When a control
changes, nodes run in order if any of their inputs changed, and each node
that ran marks itself changed for the nodes after it.

Node order per page:

	categorical: categories-dropdown(feature-dropdown)
	             end-year(start-year)
	             cat-feature-release-year-bar-plot(feature-dropdown, categories-dropdown, start-year, end-year)
	geo:         end-year-geo(start-year-geo)
	             geospatial-plot(start-year-geo, end-year-geo)
	people:      column-options-dropdown(column-dropdown)
	             column-options-plot(column-dropdown, column-options-dropdown)

A Session belongs to one connection and is not safe for concurrent use.
Values arriving from clients are checked against the current option sets
and rejected with ErrInvalidValue; a rejected change leaves the session
untouched.

	s := binder.NewSession()
	state, err := s.Navigate(ctx, binding.PathCategorical)
	update, err := s.Change(ctx, binding.FeatureDropdown, json.RawMessage(`"rating"`))
*/
package binding
