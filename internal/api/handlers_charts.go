// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/reelscope/internal/catalog"
	"github.com/tomtom215/reelscope/internal/dashboard"
)

// ChartCategorical returns the grouped bar figure of release counts per year
// for the selected feature and categories.
//
// Query: feature, categories (comma-separated or repeated), start_year,
// end_year. A start year after the end year is not an error; the figure is
// simply empty.
//
// @Summary Get categorical feature chart
// @Description Grouped bar figure of releases per year for the selected categories of one feature
// @Tags Charts
// @Produce json
// @Param feature query string false "Categorical feature (default cinematic_type)" Enums(cinematic_type, rating, country, listed_in)
// @Param categories query string false "Comma-separated categories; omitted selects the first two options, empty selects none"
// @Param start_year query int false "Start year (1800-2100)" minimum(1800) maximum(2100)
// @Param end_year query int false "End year (1800-2100)" minimum(1800) maximum(2100)
// @Success 200 {object} models.APIResponse{data=dashboard.CategoricalResult} "Figure and count table"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Router /charts/categorical [get]
func (h *Handler) ChartCategorical(w http.ResponseWriter, r *http.Request) {
	req, apiErr := h.parseCategoricalRequest(r)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	h.executeCached(w, r, "charts:categorical", req, func(context.Context) (interface{}, error) {
		return h.categorical(req)
	})
}

func (h *Handler) categorical(req *CategoricalRequest) (*dashboard.CategoricalResult, error) {
	return h.svc.CategoricalChart(dashboard.CategoricalQuery{
		Feature:    catalog.Column(req.Feature),
		Categories: req.Categories,
		StartYear:  req.StartYear,
		EndYear:    req.EndYear,
	})
}

// ChartGeo returns the choropleth of titles per country for the year range.
//
// @Summary Get geographic distribution chart
// @Tags Charts
// @Produce json
// @Param start_year query int false "Start year (1800-2100)" minimum(1800) maximum(2100)
// @Param end_year query int false "End year (1800-2100)" minimum(1800) maximum(2100)
// @Success 200 {object} models.APIResponse{data=dashboard.GeoResult} "Choropleth figure and country frequencies"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /charts/geo [get]
func (h *Handler) ChartGeo(w http.ResponseWriter, r *http.Request) {
	req, apiErr := h.parseGeoRequest(r)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	h.executeCached(w, r, "charts:geo", req, func(context.Context) (interface{}, error) {
		return h.svc.GeoChart(req.StartYear, req.EndYear), nil
	})
}

// ChartPeople returns the releases-per-year bar for one director or cast
// member. Matching is on the exact name.
//
// @Summary Get director or actor chart
// @Tags Charts
// @Produce json
// @Param column query string false "People column (default director)" Enums(director, cast)
// @Param person query string false "Exact name; omitted selects the first option" maxLength(500)
// @Success 200 {object} models.APIResponse{data=dashboard.PeopleResult} "Figure and yearly counts"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /charts/people [get]
func (h *Handler) ChartPeople(w http.ResponseWriter, r *http.Request) {
	req, apiErr := h.parsePeopleRequest(r)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	h.executeCached(w, r, "charts:people", req, func(context.Context) (interface{}, error) {
		return h.svc.PeopleChart(catalog.Column(req.Column), req.Person)
	})
}
