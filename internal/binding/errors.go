// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package binding

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPage is returned when navigating to a path with no page.
	ErrUnknownPage = errors.New("unknown page")

	// ErrNoPage is returned when a change arrives before any navigation.
	ErrNoPage = errors.New("no page selected")

	// ErrUnknownControl is returned for a control that the current page lacks.
	ErrUnknownControl = errors.New("unknown control")

	// ErrInvalidValue is returned for a control value outside the control's
	// current option set or of the wrong shape.
	ErrInvalidValue = errors.New("invalid value")
)

// NotFoundMessage is the text shown for a path with no page.
func NotFoundMessage(path string) string {
	return fmt.Sprintf("The pathname %s was not recognised...", path)
}

func invalidValue(control, format string, args ...interface{}) error {
	return fmt.Errorf("%w for %s: %s", ErrInvalidValue, control, fmt.Sprintf(format, args...))
}
