// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestNewSuccessResponse(t *testing.T) {
	t.Parallel()

	resp := NewSuccessResponse(map[string]int{"titles": 3}, Metadata{QueryTimeMS: 4})
	if resp.Status != StatusSuccess || resp.Error != nil {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Metadata.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	resp = NewSuccessResponse(nil, Metadata{Timestamp: fixed, Cached: true})
	if !resp.Metadata.Timestamp.Equal(fixed) {
		t.Errorf("timestamp = %v, want %v", resp.Metadata.Timestamp, fixed)
	}
}

func TestAPIResponse_JSONShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resp     *APIResponse
		contains []string
		absent   []string
	}{
		{
			name: "success omits error and zero metadata",
			resp: NewSuccessResponse([]string{"Movie"}, Metadata{}),
			contains: []string{
				`"status":"success"`,
				`"data":["Movie"]`,
			},
			absent: []string{`"error"`, `"cached"`, `"query_time_ms"`},
		},
		{
			name: "error keeps null data",
			resp: NewErrorResponse(ErrCodeNotFound, "The pathname /x was not recognised...", nil),
			contains: []string{
				`"status":"error"`,
				`"data":null`,
				`"code":"NOT_FOUND"`,
				`"message":"The pathname /x was not recognised..."`,
			},
			absent: []string{`"details"`},
		},
		{
			name: "error with details",
			resp: NewErrorResponse(ErrCodeValidation, "bad", map[string]interface{}{"field": "feature"}),
			contains: []string{
				`"details":{"field":"feature"}`,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.resp)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			got := string(data)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("%s missing %s", got, want)
				}
			}
			for _, bad := range tt.absent {
				if strings.Contains(got, bad) {
					t.Errorf("%s should not contain %s", got, bad)
				}
			}
		})
	}
}
