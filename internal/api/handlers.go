// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/reelscope/internal/binding"
	"github.com/tomtom215/reelscope/internal/cache"
	"github.com/tomtom215/reelscope/internal/config"
	"github.com/tomtom215/reelscope/internal/dashboard"
	"github.com/tomtom215/reelscope/internal/logging"
	ws "github.com/tomtom215/reelscope/internal/websocket"
)

// Handler contains the dependencies of the API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, WebSocket upgrade
//   - handlers_helpers.go: response writing and parameter parsing
//   - handlers_health.go: health, liveness and readiness
//   - handlers_catalog.go: dataset summary, features, option sets
//   - handlers_charts.go: categorical, geo and people figures
//   - handlers_pages.go: page list and initial page state
//   - handlers_export.go: CSV and XLSX downloads of the count table
type Handler struct {
	svc       *dashboard.Service
	binder    *binding.Binder
	wsHub     *ws.Hub
	cache     *cache.Cache // nil when CACHE_ENABLED=false
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler. c may be nil to disable response
// caching; hub may be nil, in which case /ws answers 503.
//
//	handler := api.NewHandler(svc, binder, hub, chartCache, cfg)
//	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security)))
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(svc *dashboard.Service, binder *binding.Binder, hub *ws.Hub, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		svc:       svc,
		binder:    binder,
		wsHub:     hub,
		cache:     c,
		config:    cfg,
		startTime: time.Now(),
	}
}

// ClearCache drops every cached option set and figure.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Info().Str("cache", h.cache.Name()).Msg("Response cache cleared")
	}
}

// WebSocket upgrades the request to a live dashboard session.
//
// A session slot is reserved before the upgrade so that a full hub answers
// with a plain 503 the client can read, instead of an accepted socket that
// is closed immediately.
//
// @Summary Open a live dashboard session
// @Description Upgrades to a WebSocket carrying navigate, change and state messages
// @Tags Sessions
// @Success 101 "Switching protocols"
// @Failure 403 {string} string "Origin not allowed"
// @Failure 503 {object} models.APIResponse "Hub unavailable or session limit reached"
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "WebSocket service unavailable", nil)
		return
	}

	if !h.wsHub.Admit() {
		logging.Ctx(r.Context()).Warn().Msg("WebSocket connection rejected: session limit reached")
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Too many live sessions, retry later", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.wsHub.Release()
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	if err := h.wsHub.Accept(r.Context(), conn); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket session not started")
	}
}

func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  4096,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin accepts origins listed in WS_ALLOWED_ORIGINS, or in
// CORS_ORIGINS when that is empty. Browsers always send Origin, so a missing
// header is rejected.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	if h.config == nil {
		return true
	}

	allowed := h.config.WebSocket.AllowedOrigins
	if len(allowed) == 0 {
		allowed = h.config.Security.CORSOrigins
	}
	for _, o := range allowed {
		if o == "*" || o == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}
