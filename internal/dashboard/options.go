// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package dashboard

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/tomtom215/reelscope/internal/catalog"
)

// Option is one entry of a selection widget.
type Option[T comparable] struct {
	Label string `json:"label"`
	Value T      `json:"value"`
}

// Mode selects how a column's values are read.
type Mode int

const (
	// ModeWhole treats the field as a single value.
	ModeWhole Mode = iota
	// ModeExplode splits comma-separated fields into independent values.
	ModeExplode
)

// ModeFor returns the default read mode for a column.
func ModeFor(c catalog.Column) Mode {
	if c.MultiValued() {
		return ModeExplode
	}
	return ModeWhole
}

func (m Mode) String() string {
	if m == ModeExplode {
		return "explode"
	}
	return "whole"
}

// values calls fn for every non-null value of column in title, honoring mode.
func values(t *catalog.Title, column catalog.Column, mode Mode, fn func(string)) {
	v, ok := t.Field(column)
	if !ok {
		return
	}
	if mode == ModeExplode {
		for _, part := range catalog.SplitList(v) {
			fn(part)
		}
		return
	}
	fn(v)
}

// GetOptions returns the distinct non-null values of column, sorted
// ascending, with label == value.
func GetOptions(t *catalog.Table, column catalog.Column, mode Mode) ([]Option[string], error) {
	if column == catalog.ColumnReleaseYear {
		years := YearOptions(t)
		out := make([]Option[string], len(years))
		for i, y := range years {
			out[i] = Option[string]{Label: y.Label, Value: y.Label}
		}
		return out, nil
	}
	if err := checkColumn(column); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	t.Each(func(title *catalog.Title) {
		values(title, column, mode, func(v string) {
			seen[v] = struct{}{}
		})
	})

	distinct := make([]string, 0, len(seen))
	for v := range seen {
		distinct = append(distinct, v)
	}
	sort.Strings(distinct)

	out := make([]Option[string], len(distinct))
	for i, v := range distinct {
		out[i] = Option[string]{Label: v, Value: v}
	}
	return out, nil
}

// YearOptions returns the distinct release years in ascending numeric order.
func YearOptions(t *catalog.Table) []Option[int] {
	seen := make(map[int]struct{})
	t.Each(func(title *catalog.Title) {
		seen[title.ReleaseYear] = struct{}{}
	})

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]Option[int], len(years))
	for i, y := range years {
		out[i] = Option[int]{Label: strconv.Itoa(y), Value: y}
	}
	return out
}

// ResolveLabel returns the label of the first option whose value equals
// value. A missing value is a caller bug and yields ErrOptionNotFound.
func ResolveLabel[T comparable](value T, options []Option[T]) (string, error) {
	for _, o := range options {
		if o.Value == value {
			return o.Label, nil
		}
	}
	return "", fmt.Errorf("%w: %v", ErrOptionNotFound, value)
}

// HasValue reports whether value is one of options.
func HasValue[T comparable](value T, options []Option[T]) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// OptionValues returns the values of options in order.
func OptionValues[T comparable](options []Option[T]) []T {
	out := make([]T, len(options))
	for i, o := range options {
		out[i] = o.Value
	}
	return out
}

// EndYearOptions returns the year options with value >= start, order preserved.
func EndYearOptions(years []Option[int], start int) []Option[int] {
	out := make([]Option[int], 0, len(years))
	for _, y := range years {
		if y.Value >= start {
			out = append(out, y)
		}
	}
	return out
}

// DefaultSelection returns the values of the first n options.
func DefaultSelection[T comparable](options []Option[T], n int) []T {
	if n > len(options) {
		n = len(options)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = options[i].Value
	}
	return out
}

// DefaultCategorySelection is the selection applied whenever a category
// option set is recomputed: its first two values.
func DefaultCategorySelection(options []Option[string]) []string {
	return DefaultSelection(options, 2)
}

func checkColumn(column catalog.Column) error {
	if _, err := catalog.ParseColumn(string(column)); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	return nil
}
