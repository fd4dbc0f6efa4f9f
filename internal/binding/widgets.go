// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package binding

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelscope/internal/dashboard"
)

// Widget is the rendered state of one input control.
type Widget struct {
	ID      string      `json:"id"`
	Label   string      `json:"label"`
	Multi   bool        `json:"multi,omitempty"`
	Options interface{} `json:"options"`
	Value   interface{} `json:"value"`
}

// State is the full state of a page after navigation.
type State struct {
	Page     string           `json:"page"`
	Path     string           `json:"path"`
	Title    string           `json:"title"`
	FigureID string           `json:"figure_id"`
	Widgets  []Widget         `json:"widgets"`
	Figure   dashboard.Figure `json:"figure"`
}

// Update carries the outputs recomputed after one control change. Changed
// lists every recomputed node in evaluation order; Widgets holds the
// recomputed controls and Figure is set when the chart was rebuilt.
type Update struct {
	Page    string            `json:"page"`
	Changed []string          `json:"changed"`
	Widgets []Widget          `json:"widgets"`
	Figure  *dashboard.Figure `json:"figure,omitempty"`
}

// PageInfo describes one navigable page.
type PageInfo struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Title string `json:"title"`
}

// decodeYear accepts a JSON number or a numeric string.
func decodeYear(control string, raw json.RawMessage) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, nil
		}
	}
	return 0, invalidValue(control, "expected a year, got %s", string(raw))
}

func decodeString(control string, raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", invalidValue(control, "expected a string, got %s", string(raw))
	}
	return s, nil
}

// decodeStrings accepts a JSON array of strings; null decodes to an empty list.
func decodeStrings(control string, raw json.RawMessage) ([]string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, invalidValue(control, "expected a list of strings, got %s", string(raw))
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}
