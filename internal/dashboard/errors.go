// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package dashboard

import "errors"

var (
	// ErrOptionNotFound means a value was looked up in an option set that
	// does not contain it.
	ErrOptionNotFound = errors.New("option not found")

	// ErrUnknownColumn means a column name is not part of the titles table
	// or cannot be used for the requested operation.
	ErrUnknownColumn = errors.New("unknown column")
)
