// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

// Package models holds the HTTP API wire types: the APIResponse envelope,
// its error codes, and the small summary payloads that have no home in the
// domain packages. Figures, option lists and count tables are serialized
// straight from the dashboard package.
package models
