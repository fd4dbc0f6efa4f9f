// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package dashboard

import "github.com/tomtom215/reelscope/internal/catalog"

// CategoricalFeatures are the columns offered as the category dimension of
// the grouped bar chart.
var CategoricalFeatures = []Option[catalog.Column]{
	{Label: "Cinematic type", Value: catalog.ColumnCinematicType},
	{Label: "Rating", Value: catalog.ColumnRating},
	{Label: "Country", Value: catalog.ColumnCountry},
	{Label: "Genre", Value: catalog.ColumnListedIn},
}

// PeopleColumns are the columns offered on the directors and actors page.
var PeopleColumns = []Option[catalog.Column]{
	{Label: "Directors", Value: catalog.ColumnDirector},
	{Label: "Actors", Value: catalog.ColumnCast},
}

// Features returns copies of both feature lists.
func Features() (categorical, people []Option[catalog.Column]) {
	categorical = append([]Option[catalog.Column](nil), CategoricalFeatures...)
	people = append([]Option[catalog.Column](nil), PeopleColumns...)
	return categorical, people
}
