// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	_ "github.com/tomtom215/reelscope/docs"
	"github.com/tomtom215/reelscope/internal/binding"
	"github.com/tomtom215/reelscope/internal/dashboard"
	"github.com/tomtom215/reelscope/internal/logging"
	"github.com/tomtom215/reelscope/internal/middleware"
	"github.com/tomtom215/reelscope/internal/models"
	ws "github.com/tomtom215/reelscope/internal/websocket"
)

//nolint:gochecknoinits // keep test output quiet
func init() {
	logging.Init(logging.Config{Level: "error", Output: io.Discard})
}

// ===================================================================================================
// Router Behavior
// ===================================================================================================

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()
	_, router := setupTestRouter(t, testConfig(), nil)

	rec, env := doGet(t, router, "/api/v1/nope")
	expectError(t, rec, env, http.StatusNotFound, models.ErrCodeNotFound)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/charts/geo", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d, want 405", rec.Code)
	}
	var e envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil || e.Error == nil || e.Error.Code != models.ErrCodeMethodNotAllowed {
		t.Errorf("405 body = %s", rec.Body.String())
	}
}

func TestRouter_RequestIDAndHeaders(t *testing.T) {
	t.Parallel()
	_, router := setupTestRouter(t, testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/features", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.RequestIDHeader); got != "client-supplied-id" {
		t.Errorf("X-Request-ID = %q", got)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("API security headers missing")
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("ETag missing")
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Metadata.RequestID != "client-supplied-id" {
		t.Errorf("metadata request_id = %q", env.Metadata.RequestID)
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()
	_, router := setupTestRouter(t, testConfig(), nil)

	doGet(t, router, "/api/v1/features")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("/metrics should expose api_requests_total")
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Security.RateLimitDisabled = false
	cfg.Security.RateLimitReqs = 2
	_, router := setupTestRouter(t, cfg, nil)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/features", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		router.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", last.Code)
	}
	var env envelope
	if err := json.Unmarshal(last.Body.Bytes(), &env); err != nil || env.Error == nil || env.Error.Code != models.ErrCodeRateLimitExceeded {
		t.Errorf("429 body = %s", last.Body.String())
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()
	_, router := setupTestRouter(t, testConfig(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/charts/geo", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Errorf("preflight missing Access-Control-Allow-Origin; status %d", rec.Code)
	}
}

func TestRouter_SwaggerDocs(t *testing.T) {
	t.Parallel()
	_, router := setupTestRouter(t, testConfig(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/swagger/doc.json status = %d", rec.Code)
	}

	type info struct {
		Title string `json:"title"`
	}
	var doc struct {
		Swagger  string                     `json:"swagger"`
		BasePath string                     `json:"basePath"`
		Info     info                       `json:"info"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode doc.json: %v", err)
	}
	if doc.Swagger != "2.0" || doc.BasePath != "/api/v1" || doc.Info.Title != "Reelscope API" {
		t.Errorf("doc header = %s %s %q", doc.Swagger, doc.BasePath, doc.Info.Title)
	}

	for _, path := range []string{
		"/health", "/health/live", "/health/ready",
		"/dataset", "/features", "/options/{column}", "/options/years/end",
		"/charts/categorical", "/charts/geo", "/charts/people",
		"/pages", "/pages/{path}",
		"/export/counts.csv", "/export/counts.xlsx", "/ws",
	} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("doc.json missing path %s", path)
		}
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "swagger-ui") {
		t.Errorf("/swagger/index.html status = %d", rec.Code)
	}
}

// ===================================================================================================
// WebSocket Endpoint
// ===================================================================================================

func startWebSocketServer(t *testing.T, withHub bool) *httptest.Server {
	t.Helper()

	cfg := testConfig()
	svc := testService(t)
	binder, err := binding.NewBinder(svc, bindingDefaults(cfg))
	if err != nil {
		t.Fatalf("NewBinder() error = %v", err)
	}

	var hub *ws.Hub
	if withHub {
		hub = ws.NewHub(binder, ws.Config{
			MaxSessions: cfg.WebSocket.MaxSessions,
			ChangeRate:  cfg.WebSocket.ChangeRate,
			ChangeBurst: cfg.WebSocket.ChangeBurst,
		})
		ctx, cancel := context.WithCancel(context.Background())
		go func() { _ = hub.RunWithContext(ctx) }()
		t.Cleanup(cancel)
	}

	h := NewHandler(svc, binder, hub, nil, cfg)
	srv := httptest.NewServer(NewRouter(h, NewChiMiddleware(NewChiMiddlewareConfig(cfg.Security))).SetupChi())
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"
}

func TestWebSocket_Session(t *testing.T) {
	t.Parallel()
	srv := startWebSocketServer(t, true)

	header := http.Header{}
	header.Set("Origin", "https://dashboard.example.com")

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer func() { _ = conn.Close() }()

	msg := map[string]interface{}{
		"type": ws.MessageTypeNavigate,
		"data": ws.NavigateData{Path: binding.PathPeople},
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}

	var frame struct {
		Type string        `json:"type"`
		Data binding.State `json:"data"`
	}
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if frame.Type != ws.MessageTypeState || frame.Data.Page != dashboard.ChartPeople {
		t.Errorf("frame = %s page %s", frame.Type, frame.Data.Page)
	}
}

func TestWebSocket_MissingOriginRejected(t *testing.T) {
	t.Parallel()
	srv := startWebSocketServer(t, true)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if !errors.Is(err, websocket.ErrBadHandshake) {
		t.Fatalf("Dial() error = %v, want ErrBadHandshake", err)
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("response = %+v, want 403", resp)
	}
}

func TestWebSocket_NoHub(t *testing.T) {
	t.Parallel()
	srv := startWebSocketServer(t, false)

	header := http.Header{}
	header.Set("Origin", "https://dashboard.example.com")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err == nil {
		t.Fatal("Dial() should fail without a hub")
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("response = %+v, want 503", resp)
	}
}

func TestCheckWebSocketOrigin(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.WebSocket.AllowedOrigins = []string{"https://allowed.example.com"}
	h := NewHandler(nil, nil, nil, nil, cfg)

	tests := []struct {
		origin string
		want   bool
	}{
		{"", false},
		{"https://allowed.example.com", true},
		{"https://evil.example.com", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		if got := h.checkWebSocketOrigin(r); got != tt.want {
			t.Errorf("checkWebSocketOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}
