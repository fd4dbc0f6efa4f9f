// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package catalog

import (
	"fmt"
	"strings"
)

// Column names a normalized column of the titles table.
type Column string

// Normalized column names, in source file order.
const (
	ColumnShowID        Column = "show_id"
	ColumnCinematicType Column = "cinematic_type"
	ColumnTitle         Column = "title"
	ColumnDirector      Column = "director"
	ColumnCast          Column = "cast"
	ColumnCountry       Column = "country"
	ColumnDateAdded     Column = "date_added"
	ColumnReleaseYear   Column = "release_year"
	ColumnRating        Column = "rating"
	ColumnDuration      Column = "duration"
	ColumnListedIn      Column = "listed_in"
	ColumnDescription   Column = "description"
)

// Columns lists every column in the fixed order of the titles CSV.
var Columns = []Column{
	ColumnShowID,
	ColumnCinematicType,
	ColumnTitle,
	ColumnDirector,
	ColumnCast,
	ColumnCountry,
	ColumnDateAdded,
	ColumnReleaseYear,
	ColumnRating,
	ColumnDuration,
	ColumnListedIn,
	ColumnDescription,
}

// ParseColumn resolves a column name. Matching is case-insensitive.
func ParseColumn(name string) (Column, error) {
	want := Column(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range Columns {
		if c == want {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown column %q", name)
}

// MultiValued reports whether the column holds comma-separated lists.
func (c Column) MultiValued() bool {
	switch c {
	case ColumnCast, ColumnCountry, ColumnListedIn:
		return true
	default:
		return false
	}
}

// Title is one row of the titles table. Empty strings mean the value is absent.
type Title struct {
	ShowID        string `json:"show_id"`
	CinematicType string `json:"cinematic_type,omitempty"`
	Title         string `json:"title,omitempty"`
	Director      string `json:"director,omitempty"`
	Cast          string `json:"cast,omitempty"`
	Country       string `json:"country,omitempty"`
	DateAdded     string `json:"date_added,omitempty"`
	ReleaseYear   int    `json:"release_year"`
	Rating        string `json:"rating,omitempty"`
	Duration      string `json:"duration,omitempty"`
	ListedIn      string `json:"listed_in,omitempty"`
	Description   string `json:"description,omitempty"`
}

// Field returns the string value of column and whether it is present.
// release_year is always present and is rendered in decimal.
func (t *Title) Field(c Column) (string, bool) {
	var v string
	switch c {
	case ColumnShowID:
		v = t.ShowID
	case ColumnCinematicType:
		v = t.CinematicType
	case ColumnTitle:
		v = t.Title
	case ColumnDirector:
		v = t.Director
	case ColumnCast:
		v = t.Cast
	case ColumnCountry:
		v = t.Country
	case ColumnDateAdded:
		v = t.DateAdded
	case ColumnReleaseYear:
		return fmt.Sprintf("%d", t.ReleaseYear), true
	case ColumnRating:
		v = t.Rating
	case ColumnDuration:
		v = t.Duration
	case ColumnListedIn:
		v = t.ListedIn
	case ColumnDescription:
		v = t.Description
	}
	return v, v != ""
}

// Table is the immutable titles table. It is safe for concurrent use.
type Table struct {
	titles  []Title
	minYear int
	maxYear int
}

// NewTable builds a table from titles, enforcing unique show IDs.
// The slice is copied.
func NewTable(titles []Title) (*Table, error) {
	seen := make(map[string]struct{}, len(titles))
	t := &Table{titles: make([]Title, len(titles))}
	for i := range titles {
		id := titles[i].ShowID
		if id == "" {
			return nil, fmt.Errorf("row %d: missing show_id", i+1)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("row %d: duplicate show_id %q", i+1, id)
		}
		seen[id] = struct{}{}
		t.titles[i] = titles[i]

		y := titles[i].ReleaseYear
		if i == 0 || y < t.minYear {
			t.minYear = y
		}
		if i == 0 || y > t.maxYear {
			t.maxYear = y
		}
	}
	return t, nil
}

// Len returns the number of titles.
func (t *Table) Len() int {
	return len(t.titles)
}

// At returns a copy of the i-th title.
func (t *Table) At(i int) Title {
	return t.titles[i]
}

// Each calls fn for every title in load order. The pointer must not be retained.
func (t *Table) Each(fn func(*Title)) {
	for i := range t.titles {
		fn(&t.titles[i])
	}
}

// YearRange returns the smallest and largest release year, or zeros when empty.
func (t *Table) YearRange() (minYear, maxYear int) {
	return t.minYear, t.maxYear
}

// CountryCode maps a country display name to its ISO alpha-3 code.
type CountryCode struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// CountryCodes is the immutable country code reference table.
type CountryCodes struct {
	entries []CountryCode
	byName  map[string]string
}

// NewCountryCodes builds the reference table. The first code seen for a
// name (after NFC normalization) wins.
func NewCountryCodes(entries []CountryCode) *CountryCodes {
	cc := &CountryCodes{
		entries: make([]CountryCode, len(entries)),
		byName:  make(map[string]string, len(entries)),
	}
	copy(cc.entries, entries)
	for _, e := range entries {
		key := NormalizeName(e.Name)
		if _, ok := cc.byName[key]; !ok {
			cc.byName[key] = e.Code
		}
	}
	return cc
}

// Lookup returns the code for a country display name.
func (cc *CountryCodes) Lookup(name string) (string, bool) {
	code, ok := cc.byName[NormalizeName(name)]
	return code, ok
}

// Len returns the number of reference entries.
func (cc *CountryCodes) Len() int {
	return len(cc.entries)
}

// Entries returns a copy of the reference entries in file order.
func (cc *CountryCodes) Entries() []CountryCode {
	out := make([]CountryCode, len(cc.entries))
	copy(out, cc.entries)
	return out
}

// Dataset bundles the two immutable tables loaded at startup.
// It is constructed once and shared by every request.
type Dataset struct {
	Titles *Table
	Codes  *CountryCodes
	Source string
}
