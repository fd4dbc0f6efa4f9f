// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package dashboard

import (
	"fmt"
	"time"

	"github.com/tomtom215/reelscope/internal/catalog"
	"github.com/tomtom215/reelscope/internal/metrics"
)

// Chart kinds, used as metric labels and cache key prefixes.
const (
	ChartCategorical = "categorical"
	ChartGeo         = "geo"
	ChartPeople      = "people"
)

// Service runs the option, aggregation, filter and chart pipeline over one
// immutable dataset. All methods are safe for concurrent use.
type Service struct {
	ds    *catalog.Dataset
	years []Option[int]
}

// NewService creates a service over ds. ds must not be modified afterwards.
func NewService(ds *catalog.Dataset) *Service {
	return &Service{
		ds:    ds,
		years: YearOptions(ds.Titles),
	}
}

// Dataset returns the underlying dataset.
func (s *Service) Dataset() *catalog.Dataset {
	return s.ds
}

// YearOptions returns the release year options.
func (s *Service) YearOptions() []Option[int] {
	return append([]Option[int](nil), s.years...)
}

// EndYearOptions returns the end year options for a start year.
func (s *Service) EndYearOptions(start int) []Option[int] {
	return EndYearOptions(s.years, start)
}

// Options returns the option set of column in its default read mode.
func (s *Service) Options(column catalog.Column) ([]Option[string], error) {
	return GetOptions(s.ds.Titles, column, ModeFor(column))
}

// CategoricalQuery is the selection behind the grouped bar chart.
type CategoricalQuery struct {
	Feature    catalog.Column
	Categories []string
	StartYear  int
	EndYear    int
}

// CategoricalResult is a bar figure together with the count rows it shows.
type CategoricalResult struct {
	Figure Figure     `json:"figure"`
	Counts CountTable `json:"counts"`
}

// CategoricalChart aggregates by the chosen feature, filters by the year
// range and categories, and builds the grouped bar chart.
func (s *Service) CategoricalChart(q CategoricalQuery) (*CategoricalResult, error) {
	start := time.Now()

	label, err := ResolveLabel(q.Feature, CategoricalFeatures)
	if err != nil {
		metrics.RecordChartBuild(ChartCategorical, time.Since(start), err)
		return nil, err
	}

	counts, err := AggregateCounts(s.ds.Titles, q.Feature, ModeFor(q.Feature))
	if err != nil {
		metrics.RecordChartBuild(ChartCategorical, time.Since(start), err)
		return nil, fmt.Errorf("aggregate %s: %w", q.Feature, err)
	}

	filtered := FilterCounts(counts, q.StartYear, q.EndYear, q.Categories)
	fig := BarChart(filtered, BarMeta{DimensionLabel: label})

	metrics.RecordChartBuild(ChartCategorical, time.Since(start), nil)
	return &CategoricalResult{Figure: fig, Counts: filtered}, nil
}

// GeoResult is a choropleth figure together with its location rows.
type GeoResult struct {
	Figure    Figure        `json:"figure"`
	Locations []LocationRow `json:"locations"`
}

// GeoChart builds the choropleth of country frequency for [startYear, endYear].
func (s *Service) GeoChart(startYear, endYear int) *GeoResult {
	start := time.Now()

	titles := FilterTitles(s.ds.Titles, startYear, endYear)
	locations := JoinCountryCodes(CountryFrequency(titles), s.ds.Codes)
	fig := Choropleth(locations)

	metrics.RecordChartBuild(ChartGeo, time.Since(start), nil)
	return &GeoResult{Figure: fig, Locations: locations}
}

// PeopleResult is a per-person bar figure together with its yearly counts.
type PeopleResult struct {
	Figure Figure      `json:"figure"`
	Counts []YearCount `json:"counts"`
}

// PeopleChart counts, per release year, the titles whose column lists person.
func (s *Service) PeopleChart(column catalog.Column, person string) (*PeopleResult, error) {
	start := time.Now()

	if !HasValue(column, PeopleColumns) {
		err := fmt.Errorf("%w: %s is not a people column", ErrUnknownColumn, column)
		metrics.RecordChartBuild(ChartPeople, time.Since(start), err)
		return nil, err
	}

	counts := CountByYear(s.ds.Titles, column, ModeFor(column), person)
	fig := PeopleChart(counts, person)

	metrics.RecordChartBuild(ChartPeople, time.Since(start), nil)
	return &PeopleResult{Figure: fig, Counts: counts}, nil
}
