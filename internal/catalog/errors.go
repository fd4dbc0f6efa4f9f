// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package catalog

import (
	"errors"
	"fmt"
)

// ErrStartupData is wrapped by every error that prevents the dataset from loading.
var ErrStartupData = errors.New("startup data error")

// StartupDataError describes a missing or malformed input file.
type StartupDataError struct {
	Path string
	Line int // 0 when the error is not tied to a line
	Err  error
}

func (e *StartupDataError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: load %s line %d: %v", ErrStartupData, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: load %s: %v", ErrStartupData, e.Path, e.Err)
}

func (e *StartupDataError) Unwrap() []error {
	return []error{ErrStartupData, e.Err}
}

func startupErr(path string, line int, err error) error {
	return &StartupDataError{Path: path, Line: line, Err: err}
}
