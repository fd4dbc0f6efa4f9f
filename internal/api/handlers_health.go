// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelscope/internal/models"
)

// Health reports liveness together with the size of the loaded dataset and
// the number of live dashboard sessions.
//
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthResponse} "Service health"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := models.HealthResponse{
		Status:          "healthy",
		UptimeSeconds:   time.Since(h.startTime).Seconds(),
		DatasetLoadedAt: h.startTime.UTC().Format(time.RFC3339),
	}

	if h.svc == nil {
		health.Status = "degraded"
	} else {
		ds := h.svc.Dataset()
		health.Titles = ds.Titles.Len()
		health.CountryCodes = ds.Codes.Len()
	}
	if h.wsHub != nil {
		health.SessionsActive = h.wsHub.GetClientCount()
	}

	w.Header().Set("Cache-Control", "no-store")
	respondData(w, r, health)
}

// HealthLive answers 200 while the process is running.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondData(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 200 once the dataset is loaded and 503 otherwise.
// The dataset is loaded before the server starts, so in practice this only
// fails for a handler built without a service.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil || h.binder == nil {
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeServiceUnavailable, "Dataset not loaded", nil)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	respondData(w, r, map[string]interface{}{
		"ready":  true,
		"titles": h.svc.Dataset().Titles.Len(),
	})
}
