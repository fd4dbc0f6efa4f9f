// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

// Package validation validates API request structs with
// go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and carries three catalog-aware tags:
//
//   - catalog_column: any column of the titles table
//   - categorical_feature: a column offered on the category frequency page
//   - people_column: director or cast
//
// Field names in messages come from the query or json struct tag, so a
// failure reads the way the client spelled the parameter:
//
//	type peopleRequest struct {
//	    Column string `query:"column" validate:"required,people_column"`
//	}
//
//	// "column must be director or cast"
//
// Failures convert to the API error envelope with ToAPIError, always with
// code VALIDATION_ERROR.
package validation
