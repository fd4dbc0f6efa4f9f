// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	"github.com/tomtom215/reelscope/internal/logging"
)

// Reference table header names retained by LoadCountryCodes.
const (
	countryNameHeader = "English short name lower case"
	countryCodeHeader = "Alpha-3 code"
)

// TitleReader produces the titles table from a file path.
// The CSV loader implements it; internal/database provides a DuckDB-backed one.
type TitleReader interface {
	ReadTitles(ctx context.Context, path string) (*Table, error)
}

// Loader reads the titles and country code CSV files from a filesystem.
type Loader struct {
	fs      afero.Fs
	titles  TitleReader
	workers int
}

// NewLoader creates a loader reading from fs. Titles are parsed with the
// built-in CSV reader unless WithTitleReader overrides it.
func NewLoader(fs afero.Fs) *Loader {
	l := &Loader{fs: fs, workers: 2}
	l.titles = l
	return l
}

// WithTitleReader replaces the titles parser.
func (l *Loader) WithTitleReader(r TitleReader) *Loader {
	if r != nil {
		l.titles = r
	}
	return l
}

// WithWorkers bounds how many files load concurrently.
func (l *Loader) WithWorkers(n int) *Loader {
	if n > 0 {
		l.workers = n
	}
	return l
}

// Load reads both input files concurrently and returns the dataset.
// Parse and open failures are *StartupDataError values; the first one wins.
func (l *Loader) Load(ctx context.Context, titlesPath, codesPath string) (*Dataset, error) {
	start := time.Now()

	var (
		titles *Table
		codes  *CountryCodes
	)

	p := pool.New().
		WithMaxGoroutines(l.workers).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	p.Go(func(ctx context.Context) error {
		t, err := l.titles.ReadTitles(ctx, titlesPath)
		if err != nil {
			return err
		}
		titles = t
		return nil
	})
	p.Go(func(ctx context.Context) error {
		c, err := l.LoadCountryCodes(ctx, codesPath)
		if err != nil {
			return err
		}
		codes = c
		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}

	minYear, maxYear := titles.YearRange()
	logging.Info().
		Str("component", "catalog").
		Int("titles", titles.Len()).
		Int("country_codes", codes.Len()).
		Int("min_year", minYear).
		Int("max_year", maxYear).
		Dur("elapsed", time.Since(start)).
		Msg("Dataset loaded")

	return &Dataset{Titles: titles, Codes: codes, Source: titlesPath}, nil
}

// ReadTitles implements TitleReader with encoding/csv. The header row is
// skipped and columns are mapped positionally onto Columns.
func (l *Loader) ReadTitles(ctx context.Context, path string) (*Table, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, startupErr(path, 0, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, startupErr(path, 1, errors.New("missing header row"))
		}
		return nil, startupErr(path, 1, err)
	}

	var titles []Title
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, startupErr(path, parseErrLine(err), err)
		}
		line, _ := r.FieldPos(0)
		title, err := ParseTitleRecord(record)
		if err != nil {
			return nil, startupErr(path, line, err)
		}
		titles = append(titles, title)
	}

	table, err := NewTable(titles)
	if err != nil {
		return nil, startupErr(path, 0, err)
	}
	return table, nil
}

// ParseTitleRecord maps one CSV record onto a Title. Fields are trimmed;
// release_year must be an integer.
func ParseTitleRecord(record []string) (Title, error) {
	if len(record) != len(Columns) {
		return Title{}, fmt.Errorf("expected %d columns, got %d", len(Columns), len(record))
	}
	f := make([]string, len(record))
	for i, v := range record {
		f[i] = strings.TrimSpace(v)
	}

	if f[7] == "" {
		return Title{}, errors.New("missing release_year")
	}
	year, err := strconv.Atoi(f[7])
	if err != nil {
		return Title{}, fmt.Errorf("invalid release_year %q", f[7])
	}

	return Title{
		ShowID:        f[0],
		CinematicType: f[1],
		Title:         f[2],
		Director:      f[3],
		Cast:          f[4],
		Country:       f[5],
		DateAdded:     f[6],
		ReleaseYear:   year,
		Rating:        f[8],
		Duration:      f[9],
		ListedIn:      f[10],
		Description:   f[11],
	}, nil
}

// LoadCountryCodes reads the reference CSV, keeping only the country name
// and alpha-3 code columns. Rows missing either value are skipped.
func (l *Loader) LoadCountryCodes(ctx context.Context, path string) (*CountryCodes, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, startupErr(path, 0, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, startupErr(path, 1, errors.New("missing header row"))
		}
		return nil, startupErr(path, 1, err)
	}

	nameIdx, codeIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) {
		case countryNameHeader:
			nameIdx = i
		case countryCodeHeader:
			codeIdx = i
		}
	}
	if nameIdx < 0 || codeIdx < 0 {
		return nil, startupErr(path, 1, fmt.Errorf("header must contain %q and %q", countryNameHeader, countryCodeHeader))
	}

	var entries []CountryCode
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, startupErr(path, parseErrLine(err), err)
		}
		if nameIdx >= len(record) || codeIdx >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[nameIdx])
		code := strings.TrimSpace(record[codeIdx])
		if name == "" || code == "" {
			continue
		}
		entries = append(entries, CountryCode{Name: name, Code: code})
	}

	return NewCountryCodes(entries), nil
}

func parseErrLine(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}
