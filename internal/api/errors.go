// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/reelscope/internal/binding"
	"github.com/tomtom215/reelscope/internal/dashboard"
	"github.com/tomtom215/reelscope/internal/models"
)

// ErrServiceUnavailable is returned when a handler dependency was not wired.
var ErrServiceUnavailable = errors.New("service unavailable")

// classifyError maps a domain error to its HTTP status and error code.
//
// ErrOptionNotFound stays a 500: request values are validated before any
// label lookup, so reaching it is a server bug and not a client mistake.
func classifyError(err error) (status int, code string) {
	switch {
	case errors.Is(err, binding.ErrUnknownPage):
		return http.StatusNotFound, models.ErrCodeNotFound
	case errors.Is(err, binding.ErrInvalidValue),
		errors.Is(err, binding.ErrUnknownControl),
		errors.Is(err, dashboard.ErrUnknownColumn):
		return http.StatusBadRequest, models.ErrCodeInvalidValue
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable, models.ErrCodeServiceUnavailable
	default:
		return http.StatusInternalServerError, models.ErrCodeInternal
	}
}

// respondDomainError writes err using classifyError. Only 5xx errors are
// logged; client errors carry their message back instead.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code := classifyError(err)
	if status == http.StatusServiceUnavailable {
		respondError(w, status, code, "Service unavailable", err)
		return
	}
	if status >= http.StatusInternalServerError {
		respondError(w, status, code, "Internal server error", err)
		return
	}
	respondError(w, status, code, err.Error(), nil)
}
