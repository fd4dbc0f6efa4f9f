// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelscope/internal/binding"
	"github.com/tomtom215/reelscope/internal/models"
)

// Pages lists the dashboard pages in menu order.
//
// @Summary List dashboard pages
// @Tags Pages
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]binding.PageInfo} "Pages in menu order"
// @Router /pages [get]
func (h *Handler) Pages(w http.ResponseWriter, r *http.Request) {
	if h.binder == nil {
		respondDomainError(w, ErrServiceUnavailable)
		return
	}
	respondData(w, r, h.binder.Pages())
}

// PageState returns the initial state of the page at the wildcard path:
// every widget with its options and default value, plus the figure.
// /api/v1/pages/ is the geo page at "/".
//
// @Summary Get initial page state
// @Tags Pages
// @Produce json
// @Param path path string true "Page path without the leading slash; empty for the geographic page"
// @Success 200 {object} models.APIResponse{data=binding.State} "Widgets and figure"
// @Failure 404 {object} models.APIResponse "Unknown page"
// @Router /pages/{path} [get]
func (h *Handler) PageState(w http.ResponseWriter, r *http.Request) {
	if h.binder == nil {
		respondDomainError(w, ErrServiceUnavailable)
		return
	}

	path := "/" + chi.URLParam(r, "*")
	state, err := h.binder.Render(r.Context(), path)
	if err != nil {
		if errors.Is(err, binding.ErrUnknownPage) {
			respondErrorDetails(w, http.StatusNotFound, models.ErrCodeNotFound,
				binding.NotFoundMessage(sanitizeLogValue(path)),
				map[string]interface{}{"path": sanitizeLogValue(path)}, nil)
			return
		}
		respondDomainError(w, err)
		return
	}

	respondData(w, r, state)
}
