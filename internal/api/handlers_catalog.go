// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelscope/internal/catalog"
	"github.com/tomtom215/reelscope/internal/dashboard"
	"github.com/tomtom215/reelscope/internal/models"
)

// Dataset summarizes the loaded tables.
//
// @Summary Get dataset summary
// @Description Returns the row counts of the titles and country code tables, the release year range and the loader that read them
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DatasetSummary} "Dataset summary"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /dataset [get]
func (h *Handler) Dataset(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		respondDomainError(w, ErrServiceUnavailable)
		return
	}

	ds := h.svc.Dataset()
	minYear, maxYear := ds.Titles.YearRange()
	respondData(w, r, models.DatasetSummary{
		Titles:       ds.Titles.Len(),
		CountryCodes: ds.Codes.Len(),
		MinYear:      minYear,
		MaxYear:      maxYear,
		Loader:       h.config.Dataset.Loader,
		TitlesPath:   h.config.Dataset.TitlesPath,
		CodesPath:    h.config.Dataset.CountryCodesPath,
	})
}

// Features lists the selectable columns of the categorical and people pages.
//
// @Summary List selectable features
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.FeaturesResponse} "Categorical and people columns"
// @Router /features [get]
func (h *Handler) Features(w http.ResponseWriter, r *http.Request) {
	categorical, people := dashboard.Features()
	respondData(w, r, models.FeaturesResponse{
		Categorical: featureOptions(categorical),
		People:      featureOptions(people),
	})
}

func featureOptions(options []dashboard.Option[catalog.Column]) []models.FeatureOption {
	out := make([]models.FeatureOption, len(options))
	for i, o := range options {
		out[i] = models.FeatureOption{Label: o.Label, Value: string(o.Value)}
	}
	return out
}

// Options returns the option set of a column. release_year yields numeric
// year options; every other column yields its distinct values in the
// column's default read mode. Unknown columns are 404.
//
// @Summary Get column options
// @Description Returns the sorted distinct values of a column. release_year returns numeric year options.
// @Tags Catalog
// @Produce json
// @Param column path string true "Column name" Enums(show_id, cinematic_type, title, director, cast, country, date_added, release_year, rating, duration, listed_in, description)
// @Success 200 {object} models.APIResponse{data=models.OptionsResponse} "Option set"
// @Failure 404 {object} models.APIResponse "Unknown column"
// @Router /options/{column} [get]
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "column")
	column, err := catalog.ParseColumn(name)
	if err != nil {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound,
			fmt.Sprintf("Unknown column %q", sanitizeLogValue(name)), nil)
		return
	}

	h.executeCached(w, r, "options", column, func(context.Context) (interface{}, error) {
		if column == catalog.ColumnReleaseYear {
			years := h.svc.YearOptions()
			return models.OptionsResponse{
				Column:  string(column),
				Mode:    "numeric",
				Count:   len(years),
				Options: years,
			}, nil
		}

		options, err := h.svc.Options(column)
		if err != nil {
			return nil, err
		}
		return models.OptionsResponse{
			Column:  string(column),
			Mode:    dashboard.ModeFor(column).String(),
			Count:   len(options),
			Options: options,
		}, nil
	})
}

// EndYears returns the year options at or after start_year.
//
// @Summary Get end year options
// @Tags Catalog
// @Produce json
// @Param start_year query int true "Start year (1800-2100)" minimum(1800) maximum(2100)
// @Success 200 {object} models.APIResponse{data=[]dashboard.Option[int]} "Year options"
// @Failure 400 {object} models.APIResponse "Missing or invalid start_year"
// @Router /options/years/end [get]
func (h *Handler) EndYears(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseEndYearsRequest(r)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	h.executeCached(w, r, "options:end_years", req, func(context.Context) (interface{}, error) {
		return h.svc.EndYearOptions(req.StartYear), nil
	})
}
