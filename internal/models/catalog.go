// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package models

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status          string  `json:"status"`
	Titles          int     `json:"titles"`
	CountryCodes    int     `json:"country_codes"`
	SessionsActive  int     `json:"websocket_sessions"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
	DatasetLoadedAt string  `json:"dataset_loaded_at"`
}

// DatasetSummary is returned by GET /api/v1/dataset.
type DatasetSummary struct {
	Titles       int    `json:"titles"`
	CountryCodes int    `json:"country_codes"`
	MinYear      int    `json:"min_year"`
	MaxYear      int    `json:"max_year"`
	Loader       string `json:"loader"`
	TitlesPath   string `json:"titles_path"`
	CodesPath    string `json:"country_codes_path"`
}

// FeatureOption is a selectable column with its display label.
type FeatureOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FeaturesResponse is returned by GET /api/v1/features.
type FeaturesResponse struct {
	Categorical []FeatureOption `json:"categorical"`
	People      []FeatureOption `json:"people"`
}

// OptionsResponse is returned by GET /api/v1/options/{column}. Options holds
// label/value pairs whose value type depends on the column.
type OptionsResponse struct {
	Column  string      `json:"column"`
	Mode    string      `json:"mode"`
	Count   int         `json:"count"`
	Options interface{} `json:"options"`
}
