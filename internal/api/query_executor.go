// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/reelscope/internal/cache"
	"github.com/tomtom215/reelscope/internal/middleware"
	"github.com/tomtom215/reelscope/internal/models"
)

// QueryFunc computes a response payload.
type QueryFunc func(ctx context.Context) (interface{}, error)

// executeCached serves the payload for (prefix, params) from the response
// cache, computing and storing it on a miss.
//
// params must be the fully resolved request (defaults applied), so that two
// requests that select the same data share one entry. Errors are never
// cached. Cache hits report query_time_ms 0 and cached true.
//
//	h.executeCached(w, r, "charts:geo", req, func(ctx context.Context) (interface{}, error) {
//	    return h.svc.GeoChart(req.StartYear, req.EndYear), nil
//	})
func (h *Handler) executeCached(w http.ResponseWriter, r *http.Request, prefix string, params interface{}, fn QueryFunc) {
	if h.svc == nil {
		respondDomainError(w, ErrServiceUnavailable)
		return
	}

	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	cacheKey := cache.GenerateKey(prefix, params)

	if h.cache != nil {
		if cached, found := h.cache.Get(cacheKey); found {
			respondJSON(w, http.StatusOK, models.NewSuccessResponse(cached, models.Metadata{
				Cached:    true,
				RequestID: requestID,
			}))
			return
		}
	}

	data, err := fn(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if h.cache != nil {
		h.cache.Set(cacheKey, data)
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(data, models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		RequestID:   requestID,
	}))
}

// respondData writes an uncached success response.
func respondData(w http.ResponseWriter, r *http.Request, data interface{}) {
	respondJSON(w, http.StatusOK, models.NewSuccessResponse(data, models.Metadata{
		RequestID: middleware.GetRequestID(r.Context()),
	}))
}
