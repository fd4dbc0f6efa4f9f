// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package dashboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelscope/internal/catalog"
)

func mustTable(t *testing.T, titles ...catalog.Title) *catalog.Table {
	t.Helper()
	table, err := catalog.NewTable(titles)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

// sampleTitles is a small catalog covering nulls, multi-valued fields and
// several years.
func sampleTitles() []catalog.Title {
	return []catalog.Title{
		{ShowID: "s1", CinematicType: "Movie", ReleaseYear: 2001, Rating: "PG", Country: "United States, India", Cast: "Ann Lee, Bo Chan", Director: "Kim Park"},
		{ShowID: "s2", CinematicType: "TV Show", ReleaseYear: 2001, Rating: "TV-MA", Country: "India", Cast: "Bo Chan"},
		{ShowID: "s3", CinematicType: "Movie", ReleaseYear: 2020, Rating: "PG", Country: "Atlantis", Director: "Kim Park"},
		{ShowID: "s4", CinematicType: "Movie", ReleaseYear: 2020, Country: "United States", Cast: "Anna Lee"},
		{ShowID: "s5", ReleaseYear: 1999, Rating: "R"},
	}
}

func sampleCodes() *catalog.CountryCodes {
	return catalog.NewCountryCodes([]catalog.CountryCode{
		{Name: "United States", Code: "USA"},
		{Name: "India", Code: "IND"},
		{Name: "France", Code: "FRA"},
	})
}

// =============================================================================
// Option catalog
// =============================================================================

func TestGetOptions_SortedUniqueNonNull(t *testing.T) {
	t.Parallel()

	table := mustTable(t, sampleTitles()...)

	for _, column := range catalog.Columns {
		if column == catalog.ColumnReleaseYear {
			continue
		}
		opts, err := GetOptions(table, column, ModeFor(column))
		if err != nil {
			t.Fatalf("GetOptions(%s) error = %v", column, err)
		}
		for i, o := range opts {
			if o.Value == "" {
				t.Errorf("GetOptions(%s) contains a null value", column)
			}
			if o.Label != o.Value {
				t.Errorf("GetOptions(%s)[%d] label %q != value %q", column, i, o.Label, o.Value)
			}
			if i > 0 && opts[i-1].Value >= o.Value {
				t.Errorf("GetOptions(%s) not strictly ascending at %d: %q >= %q", column, i, opts[i-1].Value, o.Value)
			}
		}
	}
}

func TestGetOptions_Values(t *testing.T) {
	t.Parallel()

	table := mustTable(t, sampleTitles()...)

	tests := []struct {
		column catalog.Column
		mode   Mode
		want   []string
	}{
		{catalog.ColumnCinematicType, ModeWhole, []string{"Movie", "TV Show"}},
		{catalog.ColumnRating, ModeWhole, []string{"PG", "R", "TV-MA"}},
		{catalog.ColumnCountry, ModeExplode, []string{"Atlantis", "India", "United States"}},
		{catalog.ColumnCountry, ModeWhole, []string{"Atlantis", "India", "United States", "United States, India"}},
		{catalog.ColumnReleaseYear, ModeWhole, []string{"1999", "2001", "2020"}},
	}

	for _, tt := range tests {
		opts, err := GetOptions(table, tt.column, tt.mode)
		if err != nil {
			t.Fatalf("GetOptions(%s) error = %v", tt.column, err)
		}
		got := OptionValues(opts)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("GetOptions(%s, %s) = %v, want %v", tt.column, tt.mode, got, tt.want)
		}
	}
}

func TestGetOptions_UnknownColumn(t *testing.T) {
	t.Parallel()

	_, err := GetOptions(mustTable(t, sampleTitles()...), "budget", ModeWhole)
	if !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("error = %v, want ErrUnknownColumn", err)
	}
}

func TestYearOptions_NumericOrder(t *testing.T) {
	t.Parallel()

	table := mustTable(t,
		catalog.Title{ShowID: "a", ReleaseYear: 2010},
		catalog.Title{ShowID: "b", ReleaseYear: 925},
		catalog.Title{ShowID: "c", ReleaseYear: 2010},
	)

	years := YearOptions(table)
	if len(years) != 2 || years[0].Value != 925 || years[1].Value != 2010 {
		t.Fatalf("YearOptions() = %+v", years)
	}
	if years[0].Label != "925" {
		t.Errorf("label = %q, want 925", years[0].Label)
	}
}

func TestResolveLabel(t *testing.T) {
	t.Parallel()

	label, err := ResolveLabel(catalog.ColumnRating, CategoricalFeatures)
	if err != nil || label != "Rating" {
		t.Errorf("ResolveLabel(rating) = %q, %v", label, err)
	}

	_, err = ResolveLabel(catalog.ColumnDescription, CategoricalFeatures)
	if !errors.Is(err, ErrOptionNotFound) {
		t.Errorf("error = %v, want ErrOptionNotFound", err)
	}
}

func TestEndYearOptions(t *testing.T) {
	t.Parallel()

	years := []Option[int]{{"1999", 1999}, {"2001", 2001}, {"2020", 2020}}

	tests := []struct {
		start int
		want  []int
	}{
		{1990, []int{1999, 2001, 2020}},
		{2001, []int{2001, 2020}},
		{2002, []int{2020}},
		{2021, []int{}},
	}

	for _, tt := range tests {
		got := OptionValues(EndYearOptions(years, tt.start))
		if len(got) != len(tt.want) {
			t.Errorf("EndYearOptions(%d) = %v, want %v", tt.start, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("EndYearOptions(%d) = %v, want %v", tt.start, got, tt.want)
				break
			}
		}
	}
}

func TestDefaultCategorySelection(t *testing.T) {
	t.Parallel()

	three := []Option[string]{{"A", "A"}, {"B", "B"}, {"C", "C"}}
	if got := DefaultCategorySelection(three); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("DefaultCategorySelection(3) = %v", got)
	}

	one := []Option[string]{{"A", "A"}}
	if got := DefaultCategorySelection(one); len(got) != 1 || got[0] != "A" {
		t.Errorf("DefaultCategorySelection(1) = %v", got)
	}

	if got := DefaultCategorySelection(nil); len(got) != 0 {
		t.Errorf("DefaultCategorySelection(nil) = %v", got)
	}
}

// =============================================================================
// Aggregator and filter engine
// =============================================================================

func TestAggregateAndFilter_Scenario(t *testing.T) {
	t.Parallel()

	table := mustTable(t,
		catalog.Title{ShowID: "1", ReleaseYear: 2001, CinematicType: "Movie"},
		catalog.Title{ShowID: "2", ReleaseYear: 2001, CinematicType: "TV Show"},
		catalog.Title{ShowID: "3", ReleaseYear: 2020, CinematicType: "Movie"},
	)

	counts, err := AggregateCounts(table, catalog.ColumnCinematicType, ModeWhole)
	if err != nil {
		t.Fatalf("AggregateCounts() error = %v", err)
	}

	want := []CountRow{
		{ReleaseYear: 2001, Category: "Movie", Count: 1},
		{ReleaseYear: 2001, Category: "TV Show", Count: 1},
		{ReleaseYear: 2020, Category: "Movie", Count: 1},
	}
	if len(counts.Rows) != len(want) {
		t.Fatalf("rows = %+v, want %+v", counts.Rows, want)
	}
	for i := range want {
		if counts.Rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, counts.Rows[i], want[i])
		}
	}

	filtered := FilterCounts(counts, 2001, 2001, []string{"Movie", "TV Show"})
	if len(filtered.Rows) != 2 || filtered.Rows[0] != want[0] || filtered.Rows[1] != want[1] {
		t.Errorf("FilterCounts(2001, 2001) = %+v", filtered.Rows)
	}
}

func TestAggregateCounts_CountConserving(t *testing.T) {
	t.Parallel()

	table := mustTable(t, sampleTitles()...)
	counts, err := AggregateCounts(table, catalog.ColumnRating, ModeWhole)
	if err != nil {
		t.Fatal(err)
	}

	perYear := make(map[int]int)
	for _, r := range counts.Rows {
		perYear[r.ReleaseYear] += r.Count
	}

	wantPerYear := make(map[int]int)
	table.Each(func(title *catalog.Title) {
		if title.Rating != "" {
			wantPerYear[title.ReleaseYear]++
		}
	})

	for y, n := range wantPerYear {
		if perYear[y] != n {
			t.Errorf("year %d sum = %d, want %d", y, perYear[y], n)
		}
	}
	if len(perYear) != len(wantPerYear) {
		t.Errorf("years = %v, want %v", perYear, wantPerYear)
	}
}

func TestAggregateCounts_Explode(t *testing.T) {
	t.Parallel()

	table := mustTable(t,
		catalog.Title{ShowID: "1", ReleaseYear: 2001, Country: "France, India,  Japan"},
		catalog.Title{ShowID: "2", ReleaseYear: 2001, Country: "India"},
	)

	counts, err := AggregateCounts(table, catalog.ColumnCountry, ModeExplode)
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	got := make(map[string]int)
	for _, r := range counts.Rows {
		total += r.Count
		got[r.Category] = r.Count
	}
	if total != 4 {
		t.Errorf("total occurrences = %d, want 4 (>= 2 rows)", total)
	}
	if got["India"] != 2 || got["France"] != 1 || got["Japan"] != 1 {
		t.Errorf("counts = %v", got)
	}
	if counts.Mode != "explode" {
		t.Errorf("Mode = %q", counts.Mode)
	}
}

func TestAggregateCounts_RejectsReleaseYear(t *testing.T) {
	t.Parallel()

	_, err := AggregateCounts(mustTable(t, sampleTitles()...), catalog.ColumnReleaseYear, ModeWhole)
	if !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("error = %v, want ErrUnknownColumn", err)
	}
}

func TestFilterCounts_EdgeCases(t *testing.T) {
	t.Parallel()

	table := mustTable(t, sampleTitles()...)
	counts, err := AggregateCounts(table, catalog.ColumnCinematicType, ModeWhole)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		start   int
		end     int
		allowed []string
		want    int
	}{
		{"empty categories", 1900, 2100, []string{}, 0},
		{"nil categories", 1900, 2100, nil, 0},
		{"end before start", 2020, 2001, []string{"Movie", "TV Show"}, 0},
		{"inclusive bounds", 2001, 2020, []string{"Movie"}, 2},
		{"unknown category", 1900, 2100, []string{"Short"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FilterCounts(counts, tt.start, tt.end, tt.allowed)
			if len(got.Rows) != tt.want {
				t.Errorf("rows = %+v, want %d", got.Rows, tt.want)
			}
			if got.Rows == nil {
				t.Error("Rows should be empty, not nil")
			}
			for _, r := range got.Rows {
				if r.ReleaseYear < tt.start || r.ReleaseYear > tt.end {
					t.Errorf("row %+v outside [%d, %d]", r, tt.start, tt.end)
				}
			}
		})
	}
}

func TestFilterTitles(t *testing.T) {
	t.Parallel()

	table := mustTable(t, sampleTitles()...)

	if got := FilterTitles(table, 2001, 2001); len(got) != 2 {
		t.Errorf("FilterTitles(2001, 2001) = %d titles, want 2", len(got))
	}
	if got := FilterTitles(table, 2021, 1999); len(got) != 0 {
		t.Errorf("FilterTitles(2021, 1999) = %d titles, want 0", len(got))
	}
	if got := FilterTitles(table, 1999, 2020); len(got) != 5 {
		t.Errorf("FilterTitles(1999, 2020) = %d titles, want 5", len(got))
	}
}

func TestCountByYear_ExactNames(t *testing.T) {
	t.Parallel()

	table := mustTable(t, sampleTitles()...)

	got := CountByYear(table, catalog.ColumnCast, ModeExplode, "Ann Lee")
	if len(got) != 1 || got[0] != (YearCount{ReleaseYear: 2001, Count: 1}) {
		t.Errorf("CountByYear(Ann Lee) = %+v, want one title in 2001 (Anna Lee excluded)", got)
	}

	got = CountByYear(table, catalog.ColumnDirector, ModeWhole, "Kim Park")
	if len(got) != 2 {
		t.Errorf("CountByYear(Kim Park) = %+v, want 2 years", got)
	}
}

// =============================================================================
// Geo
// =============================================================================

func TestCountryFrequencyAndJoin(t *testing.T) {
	t.Parallel()

	titles := sampleTitles()
	freq := CountryFrequency(titles)

	want := []FrequencyRow{
		{Country: "India", Frequency: 2},
		{Country: "United States", Frequency: 2},
		{Country: "Atlantis", Frequency: 1},
	}
	if len(freq) != len(want) {
		t.Fatalf("CountryFrequency() = %+v", freq)
	}
	for i := range want {
		if freq[i] != want[i] {
			t.Errorf("freq[%d] = %+v, want %+v", i, freq[i], want[i])
		}
	}

	locations := JoinCountryCodes(freq, sampleCodes())
	if len(locations) != 2 {
		t.Fatalf("JoinCountryCodes() = %+v, want Atlantis dropped", locations)
	}

	names := make(map[string]bool)
	for _, f := range freq {
		names[f.Country] = true
	}
	for _, l := range locations {
		if !names[l.Country] {
			t.Errorf("joined row %+v not in frequency table", l)
		}
		if l.Code == "" {
			t.Errorf("joined row %+v has no code", l)
		}
	}
}

func TestCountryFrequency_UnicodeFormsShareOneRow(t *testing.T) {
	t.Parallel()

	composed := "C\u00f4te d'Ivoire"
	decomposed := "Co\u0302te d'Ivoire"
	titles := []catalog.Title{
		{ShowID: "a", ReleaseYear: 2001, Country: composed},
		{ShowID: "b", ReleaseYear: 2001, Country: decomposed + ", India"},
	}
	codes := catalog.NewCountryCodes([]catalog.CountryCode{
		{Name: composed, Code: "CIV"},
		{Name: "India", Code: "IND"},
	})

	freq := CountryFrequency(titles)
	if len(freq) != 2 || freq[0].Country != composed || freq[0].Frequency != 2 {
		t.Fatalf("CountryFrequency() = %+v, want %q counted twice", freq, composed)
	}

	svc := NewService(&catalog.Dataset{Titles: mustTable(t, titles...), Codes: codes})
	res := svc.GeoChart(2001, 2001)

	seen := make(map[string]int)
	for _, l := range res.Locations {
		seen[l.Code]++
	}
	if seen["CIV"] != 1 {
		t.Fatalf("locations = %+v, want one CIV row", res.Locations)
	}
	for _, l := range res.Locations {
		if l.Code == "CIV" && l.Frequency != 2 {
			t.Errorf("CIV frequency = %d, want 2", l.Frequency)
		}
	}
}

// =============================================================================
// Chart builder
// =============================================================================

func TestBarChart(t *testing.T) {
	t.Parallel()

	ct := CountTable{
		Column: catalog.ColumnCinematicType,
		Rows: []CountRow{
			{ReleaseYear: 2001, Category: "Movie", Count: 3},
			{ReleaseYear: 2001, Category: "TV Show", Count: 1},
			{ReleaseYear: 2002, Category: "Movie", Count: 2},
		},
	}

	fig := BarChart(ct, BarMeta{DimensionLabel: "Cinematic type"})

	if len(fig.Data) != 2 {
		t.Fatalf("traces = %d, want 2", len(fig.Data))
	}
	movie := fig.Data[0]
	if movie.Name != "Movie" || movie.Type != "bar" {
		t.Errorf("trace 0 = %s/%s", movie.Name, movie.Type)
	}
	if len(movie.X) != 2 || movie.X[1] != 2002 || movie.Y[1] != 2 {
		t.Errorf("movie x=%v y=%v", movie.X, movie.Y)
	}
	if fig.Layout.BarMode != "group" {
		t.Errorf("barmode = %q, want group", fig.Layout.BarMode)
	}
	wantTitle := "The frequency of Netflix content released over years based on cinematic type"
	if fig.Layout.Title.Text != wantTitle {
		t.Errorf("title = %q, want %q", fig.Layout.Title.Text, wantTitle)
	}
	if fig.Layout.XAxis.Title.Text != "Release year" || fig.Layout.YAxis.Title.Text != "Count" {
		t.Errorf("axis titles = %q / %q", fig.Layout.XAxis.Title.Text, fig.Layout.YAxis.Title.Text)
	}
	if fig.Layout.Legend.Title.Text != "Cinematic type" {
		t.Errorf("legend title = %q", fig.Layout.Legend.Title.Text)
	}
}

func TestBarChart_EmptyEncodesEmptyData(t *testing.T) {
	t.Parallel()

	fig := BarChart(CountTable{}, BarMeta{DimensionLabel: "Rating"})
	b, err := json.Marshal(fig)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"data":[]`) {
		t.Errorf("empty figure JSON = %s", b)
	}
}

func TestChoropleth(t *testing.T) {
	t.Parallel()

	fig := Choropleth([]LocationRow{
		{Country: "India", Code: "IND", Frequency: 5},
		{Country: "France", Code: "FRA", Frequency: 1},
	})

	if len(fig.Data) != 1 {
		t.Fatalf("traces = %d", len(fig.Data))
	}
	tr := fig.Data[0]
	if tr.Type != "choropleth" || tr.LocationMode != "ISO-3" {
		t.Errorf("trace = %s/%s", tr.Type, tr.LocationMode)
	}
	if tr.Locations[0] != "IND" || tr.Z[0] != 5 || tr.Text[0] != "India" {
		t.Errorf("trace values = %v %v %v", tr.Locations, tr.Z, tr.Text)
	}
	if len(tr.ColorScale) != len(ampColorScale) {
		t.Errorf("colorscale stops = %d", len(tr.ColorScale))
	}
	if tr.ColorScale[0][0] != 0.0 || tr.ColorScale[len(tr.ColorScale)-1][0] != 1.0 {
		t.Errorf("colorscale bounds = %v .. %v", tr.ColorScale[0], tr.ColorScale[len(tr.ColorScale)-1])
	}
	if fig.Layout.Width != 1200 || fig.Layout.Height != 800 {
		t.Errorf("size = %dx%d", fig.Layout.Width, fig.Layout.Height)
	}
	if !strings.HasSuffix(fig.Layout.Title.Text, "based on location") {
		t.Errorf("title = %q", fig.Layout.Title.Text)
	}
}

func TestPeopleChart(t *testing.T) {
	t.Parallel()

	fig := PeopleChart([]YearCount{{ReleaseYear: 2001, Count: 2}}, "Bo Chan")
	if len(fig.Data) != 1 || fig.Data[0].Y[0] != 2 {
		t.Fatalf("figure = %+v", fig.Data)
	}
	if fig.Layout.Title.Text != "The frequency of Netflix content participated by Bo Chan over years" {
		t.Errorf("title = %q", fig.Layout.Title.Text)
	}

	if empty := PeopleChart(nil, "Nobody"); len(empty.Data) != 0 {
		t.Errorf("empty figure has %d traces", len(empty.Data))
	}
}

// =============================================================================
// Service
// =============================================================================

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(&catalog.Dataset{
		Titles: mustTable(t, sampleTitles()...),
		Codes:  sampleCodes(),
	})
}

func TestService_CategoricalChart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	res, err := svc.CategoricalChart(CategoricalQuery{
		Feature:    catalog.ColumnCinematicType,
		Categories: []string{"Movie", "TV Show"},
		StartYear:  2001,
		EndYear:    2020,
	})
	if err != nil {
		t.Fatalf("CategoricalChart() error = %v", err)
	}
	if len(res.Figure.Data) != 2 {
		t.Errorf("traces = %d, want 2", len(res.Figure.Data))
	}
	if len(res.Counts.Rows) != 3 {
		t.Errorf("rows = %+v", res.Counts.Rows)
	}

	// Country is exploded: s1 contributes to both India and United States.
	res, err = svc.CategoricalChart(CategoricalQuery{
		Feature:    catalog.ColumnCountry,
		Categories: []string{"India"},
		StartYear:  2001,
		EndYear:    2001,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Counts.Rows) != 1 || res.Counts.Rows[0].Count != 2 {
		t.Errorf("India 2001 rows = %+v", res.Counts.Rows)
	}

	_, err = svc.CategoricalChart(CategoricalQuery{Feature: catalog.ColumnTitle, StartYear: 2001, EndYear: 2020})
	if !errors.Is(err, ErrOptionNotFound) {
		t.Errorf("error = %v, want ErrOptionNotFound", err)
	}
}

func TestService_GeoChart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	res := svc.GeoChart(2001, 2001)
	if len(res.Locations) != 2 {
		t.Errorf("locations = %+v", res.Locations)
	}

	res = svc.GeoChart(2020, 2001)
	if len(res.Locations) != 0 || len(res.Figure.Data) != 0 {
		t.Errorf("inverted range should be empty, got %+v", res.Locations)
	}
}

func TestService_PeopleChart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	res, err := svc.PeopleChart(catalog.ColumnCast, "Bo Chan")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Counts) != 1 || res.Counts[0].Count != 2 {
		t.Errorf("counts = %+v", res.Counts)
	}

	if _, err := svc.PeopleChart(catalog.ColumnRating, "PG"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("error = %v, want ErrUnknownColumn", err)
	}
}

func TestService_ConcurrentUse(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				_, _ = svc.CategoricalChart(CategoricalQuery{Feature: catalog.ColumnRating, Categories: []string{"PG"}, StartYear: 1999, EndYear: 2020})
				_ = svc.GeoChart(1999, 2020)
				_ = svc.EndYearOptions(2001)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	if got := len(svc.YearOptions()); got != 3 {
		t.Errorf("YearOptions() = %d entries after concurrent use, want 3", got)
	}
}
