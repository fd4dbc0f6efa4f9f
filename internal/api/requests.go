// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/reelscope/internal/catalog"
	"github.com/tomtom215/reelscope/internal/dashboard"
	"github.com/tomtom215/reelscope/internal/models"
)

// CategoricalRequest selects the grouped bar chart. It is also the cache key
// for the chart and the export endpoints, so every field is resolved to its
// effective value before use.
type CategoricalRequest struct {
	Feature    string   `json:"feature" query:"feature" validate:"required,categorical_feature"`
	Categories []string `json:"categories" query:"categories" validate:"max=1000,dive,max=500"`
	StartYear  int      `json:"start_year" query:"start_year" validate:"gte=1800,lte=2100"`
	EndYear    int      `json:"end_year" query:"end_year" validate:"gte=1800,lte=2100"`
}

// GeoRequest selects the choropleth year range. As on every request, years
// are bounded to 1800..2100; years outside the dataset give empty results.
type GeoRequest struct {
	StartYear int `json:"start_year" query:"start_year" validate:"gte=1800,lte=2100"`
	EndYear   int `json:"end_year" query:"end_year" validate:"gte=1800,lte=2100"`
}

// PeopleRequest selects a director or cast member.
type PeopleRequest struct {
	Column string `json:"column" query:"column" validate:"required,people_column"`
	Person string `json:"person" query:"person" validate:"max=500"`
}

// EndYearsRequest asks for the end-year options after a start year.
type EndYearsRequest struct {
	StartYear int `json:"start_year" query:"start_year" validate:"required,gte=1800,lte=2100"`
}

// parseCategoricalRequest reads the categorical selection. Omitted values
// fall back to the dashboard defaults; omitted categories select the first
// two options of the feature, while an explicitly empty list selects none.
func (h *Handler) parseCategoricalRequest(r *http.Request) (*CategoricalRequest, *models.APIError) {
	defaults := h.config.Dashboard

	req := &CategoricalRequest{
		Feature: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("feature"))),
	}
	if req.Feature == "" {
		req.Feature = defaults.CategoricalDefaultFeature
	}

	var apiErr *models.APIError
	if req.StartYear, apiErr = getIntParam(r, "start_year", defaults.CategoricalStartYear); apiErr != nil {
		return nil, apiErr
	}
	if req.EndYear, apiErr = getIntParam(r, "end_year", defaults.CategoricalEndYear); apiErr != nil {
		return nil, apiErr
	}

	categories, present := getListParam(r, "categories")
	req.Categories = categories

	if apiErr := validateRequest(req); apiErr != nil {
		return nil, apiErr
	}

	if !present {
		options, err := h.svc.Options(catalog.Column(req.Feature))
		if err != nil {
			return nil, &models.APIError{Code: models.ErrCodeInvalidValue, Message: err.Error()}
		}
		req.Categories = dashboard.DefaultCategorySelection(options)
	}
	return req, nil
}

func (h *Handler) parseGeoRequest(r *http.Request) (*GeoRequest, *models.APIError) {
	defaults := h.config.Dashboard
	req := &GeoRequest{}

	var apiErr *models.APIError
	if req.StartYear, apiErr = getIntParam(r, "start_year", defaults.GeoStartYear); apiErr != nil {
		return nil, apiErr
	}
	if req.EndYear, apiErr = getIntParam(r, "end_year", defaults.GeoEndYear); apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validateRequest(req); apiErr != nil {
		return nil, apiErr
	}
	return req, nil
}

// parsePeopleRequest reads the people selection. An omitted person selects
// the first option of the column, or nobody when the column is empty.
func (h *Handler) parsePeopleRequest(r *http.Request) (*PeopleRequest, *models.APIError) {
	q := r.URL.Query()
	req := &PeopleRequest{
		Column: strings.ToLower(strings.TrimSpace(q.Get("column"))),
		Person: q.Get("person"),
	}
	if req.Column == "" {
		req.Column = h.config.Dashboard.PeopleDefaultColumn
	}
	if apiErr := validateRequest(req); apiErr != nil {
		return nil, apiErr
	}

	if !q.Has("person") {
		options, err := h.svc.Options(catalog.Column(req.Column))
		if err != nil {
			return nil, &models.APIError{Code: models.ErrCodeInvalidValue, Message: err.Error()}
		}
		if len(options) > 0 {
			req.Person = options[0].Value
		}
	}
	return req, nil
}

func parseEndYearsRequest(r *http.Request) (*EndYearsRequest, *models.APIError) {
	req := &EndYearsRequest{}

	var apiErr *models.APIError
	if req.StartYear, apiErr = getIntParam(r, "start_year", 0); apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validateRequest(req); apiErr != nil {
		return nil, apiErr
	}
	return req, nil
}
