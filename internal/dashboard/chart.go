// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package dashboard

import (
	"fmt"
	"strings"
)

// Chart builders emit Plotly figure JSON ({"data": [...], "layout": {...}}).
// The browser hands the figure to Plotly.react unchanged.

// CatalogName is the provider named in chart titles.
const CatalogName = "Netflix"

// Axis titles shared by every bar chart.
const (
	ReleaseYearLabel = "Release year"
	CountLabel       = "Count"
	FrequencyLabel   = "Frequency"
)

// Choropleth canvas size.
const (
	choroplethWidth  = 1200
	choroplethHeight = 800
)

// qualitativeColors is the default discrete palette for bar series.
var qualitativeColors = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// ampColorScale is the sequential "amp" scale (cmocean), light to dark red.
var ampColorScale = []string{
	"rgb(241, 236, 236)", "rgb(230, 209, 203)", "rgb(221, 182, 170)",
	"rgb(213, 156, 137)", "rgb(205, 129, 103)", "rgb(196, 102, 73)",
	"rgb(186, 74, 47)", "rgb(172, 44, 36)", "rgb(149, 19, 39)",
	"rgb(120, 14, 40)", "rgb(89, 13, 31)", "rgb(60, 9, 17)",
}

// Figure is a declarative chart description.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one Plotly trace. Bar traces use X/Y; choropleth traces use
// Locations/Z/Text.
type Trace struct {
	Type          string          `json:"type"`
	Name          string          `json:"name,omitempty"`
	X             []int           `json:"x,omitempty"`
	Y             []int           `json:"y,omitempty"`
	Locations     []string        `json:"locations,omitempty"`
	LocationMode  string          `json:"locationmode,omitempty"`
	Z             []int           `json:"z,omitempty"`
	Text          []string        `json:"text,omitempty"`
	HoverTemplate string          `json:"hovertemplate,omitempty"`
	Marker        *Marker         `json:"marker,omitempty"`
	ColorScale    [][]interface{} `json:"colorscale,omitempty"`
	ColorBar      *ColorBar       `json:"colorbar,omitempty"`
	ShowLegend    *bool           `json:"showlegend,omitempty"`
}

// Marker styles bar fills.
type Marker struct {
	Color string `json:"color"`
}

// ColorBar labels a continuous color scale.
type ColorBar struct {
	Title Text `json:"title"`
}

// Text is a Plotly title object.
type Text struct {
	Text string `json:"text"`
}

// Axis configures a cartesian axis.
type Axis struct {
	Title Text   `json:"title"`
	Type  string `json:"type,omitempty"`
}

// Legend configures the legend box.
type Legend struct {
	Title Text `json:"title"`
}

// Geo configures the map projection of a choropleth.
type Geo struct {
	ShowFrame      bool       `json:"showframe"`
	ShowCoastlines bool       `json:"showcoastlines"`
	Projection     Projection `json:"projection"`
}

// Projection names a map projection.
type Projection struct {
	Type string `json:"type"`
}

// Layout is the figure layout.
type Layout struct {
	Title   Text    `json:"title"`
	XAxis   *Axis   `json:"xaxis,omitempty"`
	YAxis   *Axis   `json:"yaxis,omitempty"`
	BarMode string  `json:"barmode,omitempty"`
	Legend  *Legend `json:"legend,omitempty"`
	Geo     *Geo    `json:"geo,omitempty"`
	Width   int     `json:"width,omitempty"`
	Height  int     `json:"height,omitempty"`
}

// BarMeta carries the display metadata of a grouped bar chart.
type BarMeta struct {
	// DimensionLabel is the human-readable label of the category column.
	DimensionLabel string
}

// BarChart builds a grouped bar chart: one trace per category, x =
// release_year, y = count. Traces appear in order of first appearance.
func BarChart(ct CountTable, meta BarMeta) Figure {
	traces := []Trace{}
	index := make(map[string]int)

	for _, r := range ct.Rows {
		i, ok := index[r.Category]
		if !ok {
			i = len(traces)
			index[r.Category] = i
			traces = append(traces, Trace{
				Type:          "bar",
				Name:          r.Category,
				X:             []int{},
				Y:             []int{},
				Marker:        &Marker{Color: qualitativeColors[i%len(qualitativeColors)]},
				HoverTemplate: fmt.Sprintf("%s=%s<br>%s=%%{x}<br>%s=%%{y}<extra></extra>", meta.DimensionLabel, r.Category, ReleaseYearLabel, CountLabel),
			})
		}
		traces[i].X = append(traces[i].X, r.ReleaseYear)
		traces[i].Y = append(traces[i].Y, r.Count)
	}

	return Figure{
		Data: traces,
		Layout: Layout{
			Title:   Text{Text: fmt.Sprintf("The frequency of %s content released over years based on %s", CatalogName, strings.ToLower(meta.DimensionLabel))},
			XAxis:   &Axis{Title: Text{Text: ReleaseYearLabel}, Type: "linear"},
			YAxis:   &Axis{Title: Text{Text: CountLabel}},
			BarMode: "group",
			Legend:  &Legend{Title: Text{Text: meta.DimensionLabel}},
		},
	}
}

// PeopleChart builds the single-series releases-by-year bar chart for one
// director or cast member.
func PeopleChart(counts []YearCount, person string) Figure {
	traces := []Trace{}
	if len(counts) > 0 {
		hidden := false
		tr := Trace{
			Type:          "bar",
			Name:          person,
			X:             make([]int, len(counts)),
			Y:             make([]int, len(counts)),
			Marker:        &Marker{Color: qualitativeColors[0]},
			HoverTemplate: fmt.Sprintf("%s=%%{x}<br>%s=%%{y}<extra></extra>", ReleaseYearLabel, CountLabel),
			ShowLegend:    &hidden,
		}
		for i, c := range counts {
			tr.X[i] = c.ReleaseYear
			tr.Y[i] = c.Count
		}
		traces = append(traces, tr)
	}

	return Figure{
		Data: traces,
		Layout: Layout{
			Title:   Text{Text: fmt.Sprintf("The frequency of %s content participated by %s over years", CatalogName, person)},
			XAxis:   &Axis{Title: Text{Text: ReleaseYearLabel}, Type: "linear"},
			YAxis:   &Axis{Title: Text{Text: CountLabel}},
			BarMode: "group",
		},
	}
}

// Choropleth colors each country code by frequency on the sequential amp
// scale, with the country name as hover text.
func Choropleth(rows []LocationRow) Figure {
	traces := []Trace{}
	if len(rows) > 0 {
		tr := Trace{
			Type:          "choropleth",
			Locations:     make([]string, len(rows)),
			LocationMode:  "ISO-3",
			Z:             make([]int, len(rows)),
			Text:          make([]string, len(rows)),
			HoverTemplate: fmt.Sprintf("<b>%%{text}</b><br>Code=%%{location}<br>%s=%%{z}<extra></extra>", FrequencyLabel),
			ColorScale:    colorScale(ampColorScale),
			ColorBar:      &ColorBar{Title: Text{Text: FrequencyLabel}},
		}
		for i, r := range rows {
			tr.Locations[i] = r.Code
			tr.Z[i] = r.Frequency
			tr.Text[i] = r.Country
		}
		traces = append(traces, tr)
	}

	return Figure{
		Data: traces,
		Layout: Layout{
			Title:  Text{Text: fmt.Sprintf("The frequency of %s content released over years based on location", CatalogName)},
			Geo:    &Geo{ShowFrame: false, ShowCoastlines: true, Projection: Projection{Type: "natural earth"}},
			Width:  choroplethWidth,
			Height: choroplethHeight,
		},
	}
}

// colorScale spreads colors evenly over [0, 1].
func colorScale(colors []string) [][]interface{} {
	out := make([][]interface{}, len(colors))
	last := float64(len(colors) - 1)
	for i, c := range colors {
		out[i] = []interface{}{float64(i) / last, c}
	}
	return out
}
