// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return one non-nil instance")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type chartRequest struct {
	Feature   string `query:"feature" validate:"required,categorical_feature"`
	StartYear int    `query:"start_year" validate:"gte=1800,lte=2100"`
	EndYear   int    `query:"end_year" validate:"gte=1800,lte=2100"`
}

type peopleRequest struct {
	Column string `json:"column" validate:"required,people_column"`
	Person string `json:"person" validate:"max=200"`
}

type columnRequest struct {
	Column string `validate:"catalog_column"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:  "valid chart request",
			input: &chartRequest{Feature: "rating", StartYear: 2001, EndYear: 2021},
		},
		{
			name:  "end before start is allowed",
			input: &chartRequest{Feature: "listed_in", StartYear: 2021, EndYear: 2001},
		},
		{
			name:      "missing feature",
			input:     &chartRequest{StartYear: 2001, EndYear: 2021},
			wantField: "feature",
			wantTag:   "required",
			wantMsg:   "feature is required",
		},
		{
			name:      "people column is not a categorical feature",
			input:     &chartRequest{Feature: "director", StartYear: 2001, EndYear: 2021},
			wantField: "feature",
			wantTag:   "categorical_feature",
		},
		{
			name:      "year out of range",
			input:     &chartRequest{Feature: "rating", StartYear: 1500, EndYear: 2021},
			wantField: "start_year",
			wantTag:   "gte",
			wantMsg:   "start_year must be greater than or equal to 1800",
		},
		{
			name:  "valid people request",
			input: &peopleRequest{Column: "cast", Person: "Ann Lee"},
		},
		{
			name:      "bad people column",
			input:     &peopleRequest{Column: "rating"},
			wantField: "column",
			wantTag:   "people_column",
			wantMsg:   "column must be director or cast",
		},
		{
			name:      "person too long",
			input:     &peopleRequest{Column: "director", Person: strings.Repeat("x", 201)},
			wantField: "person",
			wantTag:   "max",
			wantMsg:   "person must be at most 200 characters",
		},
		{
			name:  "catalog column is case-insensitive",
			input: &columnRequest{Column: "Release_Year"},
		},
		{
			name:      "unknown catalog column uses Go name without tags",
			input:     &columnRequest{Column: "budget"},
			wantField: "Column",
			wantTag:   "catalog_column",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(tt.input)
			if tt.wantTag == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("error = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

// ===================================================================================================
// ToAPIError Tests
// ===================================================================================================

func TestToAPIError_Single(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&peopleRequest{Column: "title"})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if apiErr.Details["field"] != "column" || apiErr.Details["value"] != "title" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestToAPIError_Multiple(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&chartRequest{StartYear: 3000, EndYear: 1})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	apiErr := verr.ToAPIError()

	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Fatalf("Details[fields] = %v, want 3 entries", apiErr.Details["fields"])
	}
	for _, want := range []string{"feature is required", "start_year must be less than or equal to 2100", "end_year must be greater than or equal to 1800"} {
		if !strings.Contains(apiErr.Message, want) {
			t.Errorf("Message %q missing %q", apiErr.Message, want)
		}
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("Error() = %q, want joined messages", verr.Error())
	}
}

func TestToAPIError_Empty(t *testing.T) {
	t.Parallel()

	verr := &RequestValidationError{}
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if got := verr.ToAPIError(); got.Code != "VALIDATION_ERROR" || got.Details != nil {
		t.Errorf("ToAPIError() = %+v", got)
	}
}
