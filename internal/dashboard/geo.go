// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package dashboard

import (
	"sort"

	"github.com/tomtom215/reelscope/internal/catalog"
)

// FrequencyRow is the number of occurrences of a country name.
type FrequencyRow struct {
	Country   string `json:"country"`
	Frequency int    `json:"frequency"`
}

// LocationRow is a FrequencyRow that resolved to a country code.
type LocationRow struct {
	Country   string `json:"country"`
	Code      string `json:"code"`
	Frequency int    `json:"frequency"`
}

// CountryFrequency explodes the country field of titles and counts each
// name under its NFC form, the same key JoinCountryCodes looks up. Rows are ordered by descending frequency, ties by name.
func CountryFrequency(titles []catalog.Title) []FrequencyRow {
	counts := make(map[string]int)
	for i := range titles {
		for _, name := range catalog.SplitList(titles[i].Country) {
			counts[catalog.NormalizeName(name)]++
		}
	}

	out := make([]FrequencyRow, 0, len(counts))
	for name, n := range counts {
		out = append(out, FrequencyRow{Country: name, Frequency: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Country < out[j].Country
	})
	return out
}

// JoinCountryCodes attaches a code to every frequency row. Rows whose name
// has no code are dropped; the output never contains a row that is not in freq.
func JoinCountryCodes(freq []FrequencyRow, codes *catalog.CountryCodes) []LocationRow {
	out := make([]LocationRow, 0, len(freq))
	for _, f := range freq {
		code, ok := codes.Lookup(f.Country)
		if !ok {
			continue
		}
		out = append(out, LocationRow{Country: f.Country, Code: code, Frequency: f.Frequency})
	}
	return out
}
