// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package binding

import (
	"github.com/goccy/go-json"

	"github.com/tomtom215/reelscope/internal/catalog"
	"github.com/tomtom215/reelscope/internal/dashboard"
)

// Page paths.
const (
	PathGeo         = "/"
	PathCategorical = "/cat-feature-frequency"
	PathPeople      = "/directors-actors-insights"
)

// Control and figure IDs.
const (
	GeoStartYear = "start-year-geo"
	GeoEndYear   = "end-year-geo"
	GeoFigure    = "geospatial-plot"

	FeatureDropdown    = "feature-dropdown"
	CategoriesDropdown = "categories-dropdown"
	StartYear          = "start-year"
	EndYear            = "end-year"
	CategoricalFigure  = "cat-feature-release-year-bar-plot"

	ColumnDropdown        = "column-dropdown"
	ColumnOptionsDropdown = "column-options-dropdown"
	PeopleFigure          = "column-options-plot"
)

// node is one derived output. inputs name the controls or nodes it reads.
type node struct {
	id     string
	inputs []string
	run    func(b *Binder, st *pageState) error
}

func (n node) triggeredBy(dirty map[string]bool) bool {
	for _, in := range n.inputs {
		if dirty[in] {
			return true
		}
	}
	return false
}

type setter func(b *Binder, st *pageState, raw json.RawMessage) error

type renderer func(b *Binder, st *pageState) Widget

// page is a static page definition. nodes are listed in topological order.
type page struct {
	name     string
	path     string
	title    string
	figureID string
	widgets  []string
	init     func(b *Binder, st *pageState)
	controls map[string]setter
	render   map[string]renderer
	nodes    []node
}

// ========================================
// Geospatial distribution
// ========================================

func geoPage() *page {
	return &page{
		name:     dashboard.ChartGeo,
		path:     PathGeo,
		title:    "Geospatial distribution",
		figureID: GeoFigure,
		widgets:  []string{GeoStartYear, GeoEndYear},
		init: func(b *Binder, st *pageState) {
			st.startYear = b.defaults.GeoStartYear
			st.endYear = b.defaults.GeoEndYear
		},
		controls: map[string]setter{
			GeoStartYear: setStartYear(GeoStartYear),
			GeoEndYear:   setEndYear(GeoEndYear),
		},
		render: map[string]renderer{
			GeoStartYear: renderStartYear(GeoStartYear),
			GeoEndYear:   renderEndYear(GeoEndYear),
		},
		nodes: []node{
			{id: GeoEndYear, inputs: []string{GeoStartYear}, run: runEndYearOptions},
			{id: GeoFigure, inputs: []string{GeoStartYear, GeoEndYear}, run: func(b *Binder, st *pageState) error {
				st.figure = b.svc.GeoChart(st.startYear, st.endYear).Figure
				return nil
			}},
		},
	}
}

// ========================================
// Categorical features frequency
// ========================================

func categoricalPage() *page {
	return &page{
		name:     dashboard.ChartCategorical,
		path:     PathCategorical,
		title:    "Categorical features frequency",
		figureID: CategoricalFigure,
		widgets:  []string{FeatureDropdown, CategoriesDropdown, StartYear, EndYear},
		init: func(b *Binder, st *pageState) {
			st.feature = b.defaults.CategoricalFeature
			st.startYear = b.defaults.CategoricalStartYear
			st.endYear = b.defaults.CategoricalEndYear
		},
		controls: map[string]setter{
			FeatureDropdown: func(_ *Binder, st *pageState, raw json.RawMessage) error {
				v, err := decodeString(FeatureDropdown, raw)
				if err != nil {
					return err
				}
				col := catalog.Column(v)
				if !dashboard.HasValue(col, dashboard.CategoricalFeatures) {
					return invalidValue(FeatureDropdown, "%q is not a categorical feature", v)
				}
				st.feature = col
				return nil
			},
			CategoriesDropdown: func(_ *Binder, st *pageState, raw json.RawMessage) error {
				list, err := decodeStrings(CategoriesDropdown, raw)
				if err != nil {
					return err
				}
				seen := make(map[string]bool, len(list))
				out := make([]string, 0, len(list))
				for _, v := range list {
					if !dashboard.HasValue(v, st.categoryOptions) {
						return invalidValue(CategoriesDropdown, "%q is not a category of %s", v, st.feature)
					}
					if !seen[v] {
						seen[v] = true
						out = append(out, v)
					}
				}
				st.categories = out
				return nil
			},
			StartYear: setStartYear(StartYear),
			EndYear:   setEndYear(EndYear),
		},
		render: map[string]renderer{
			FeatureDropdown: func(_ *Binder, st *pageState) Widget {
				return Widget{ID: FeatureDropdown, Label: "Categorical feature", Options: dashboard.CategoricalFeatures, Value: st.feature}
			},
			CategoriesDropdown: func(_ *Binder, st *pageState) Widget {
				return Widget{ID: CategoriesDropdown, Label: "Categories", Multi: true, Options: st.categoryOptions, Value: st.categories}
			},
			StartYear: renderStartYear(StartYear),
			EndYear:   renderEndYear(EndYear),
		},
		nodes: []node{
			// A new option set always resets the selection to its first two values.
			{id: CategoriesDropdown, inputs: []string{FeatureDropdown}, run: func(b *Binder, st *pageState) error {
				opts, err := b.svc.Options(st.feature)
				if err != nil {
					return err
				}
				st.categoryOptions = opts
				st.categories = dashboard.DefaultCategorySelection(opts)
				return nil
			}},
			{id: EndYear, inputs: []string{StartYear}, run: runEndYearOptions},
			{id: CategoricalFigure, inputs: []string{FeatureDropdown, CategoriesDropdown, StartYear, EndYear}, run: func(b *Binder, st *pageState) error {
				res, err := b.svc.CategoricalChart(dashboard.CategoricalQuery{
					Feature:    st.feature,
					Categories: st.categories,
					StartYear:  st.startYear,
					EndYear:    st.endYear,
				})
				if err != nil {
					return err
				}
				st.figure = res.Figure
				return nil
			}},
		},
	}
}

// ========================================
// Directors and actors insights
// ========================================

func peoplePage() *page {
	return &page{
		name:     dashboard.ChartPeople,
		path:     PathPeople,
		title:    "Directors and actors insights",
		figureID: PeopleFigure,
		widgets:  []string{ColumnDropdown, ColumnOptionsDropdown},
		init: func(b *Binder, st *pageState) {
			st.column = b.defaults.PeopleColumn
		},
		controls: map[string]setter{
			ColumnDropdown: func(_ *Binder, st *pageState, raw json.RawMessage) error {
				v, err := decodeString(ColumnDropdown, raw)
				if err != nil {
					return err
				}
				col := catalog.Column(v)
				if !dashboard.HasValue(col, dashboard.PeopleColumns) {
					return invalidValue(ColumnDropdown, "%q is not a people column", v)
				}
				st.column = col
				return nil
			},
			ColumnOptionsDropdown: func(_ *Binder, st *pageState, raw json.RawMessage) error {
				v, err := decodeString(ColumnOptionsDropdown, raw)
				if err != nil {
					return err
				}
				if !dashboard.HasValue(v, st.personOptions) {
					return invalidValue(ColumnOptionsDropdown, "%q is not listed in %s", v, st.column)
				}
				st.person = v
				return nil
			},
		},
		render: map[string]renderer{
			ColumnDropdown: func(_ *Binder, st *pageState) Widget {
				return Widget{ID: ColumnDropdown, Label: "Column", Options: dashboard.PeopleColumns, Value: st.column}
			},
			ColumnOptionsDropdown: func(_ *Binder, st *pageState) Widget {
				return Widget{ID: ColumnOptionsDropdown, Label: "Options", Options: st.personOptions, Value: st.person}
			},
		},
		nodes: []node{
			{id: ColumnOptionsDropdown, inputs: []string{ColumnDropdown}, run: func(b *Binder, st *pageState) error {
				opts, err := b.svc.Options(st.column)
				if err != nil {
					return err
				}
				st.personOptions = opts
				st.person = ""
				if len(opts) > 0 {
					st.person = opts[0].Value
				}
				return nil
			}},
			{id: PeopleFigure, inputs: []string{ColumnDropdown, ColumnOptionsDropdown}, run: func(b *Binder, st *pageState) error {
				res, err := b.svc.PeopleChart(st.column, st.person)
				if err != nil {
					return err
				}
				st.figure = res.Figure
				return nil
			}},
		},
	}
}

// ========================================
// Shared year controls
// ========================================

func setStartYear(id string) setter {
	return func(b *Binder, st *pageState, raw json.RawMessage) error {
		y, err := decodeYear(id, raw)
		if err != nil {
			return err
		}
		if !dashboard.HasValue(y, b.years) {
			return invalidValue(id, "%d is not a release year", y)
		}
		st.startYear = y
		return nil
	}
}

// setEndYear only accepts years offered for the current start year. A
// previously selected end year that falls below a new start year is kept.
func setEndYear(id string) setter {
	return func(_ *Binder, st *pageState, raw json.RawMessage) error {
		y, err := decodeYear(id, raw)
		if err != nil {
			return err
		}
		if !dashboard.HasValue(y, st.endOptions) {
			return invalidValue(id, "%d is not offered for start year %d", y, st.startYear)
		}
		st.endYear = y
		return nil
	}
}

func runEndYearOptions(b *Binder, st *pageState) error {
	st.endOptions = dashboard.EndYearOptions(b.years, st.startYear)
	return nil
}

func renderStartYear(id string) renderer {
	return func(b *Binder, st *pageState) Widget {
		return Widget{ID: id, Label: "Start year", Options: b.years, Value: st.startYear}
	}
}

func renderEndYear(id string) renderer {
	return func(_ *Binder, st *pageState) Widget {
		return Widget{ID: id, Label: "End year", Options: st.endOptions, Value: st.endYear}
	}
}
