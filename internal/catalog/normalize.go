// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName returns the join key for a display name: NFC-composed and
// trimmed. "Côte d'Ivoire" typed with a combining accent matches the
// precomposed form used by the reference table.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// SplitList explodes a comma-separated field into trimmed, non-empty values.
// "United States, India" -> ["United States", "India"].
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
