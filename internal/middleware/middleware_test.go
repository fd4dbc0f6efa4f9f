// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/reelscope/internal/logging"
	"github.com/tomtom215/reelscope/internal/metrics"
)

// ===================================================================================================
// RequestID
// ===================================================================================================

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "generated when absent", incoming: ""},
		{name: "upstream id reused", incoming: "edge-1234", wantSame: true},
		{name: "id with spaces replaced", incoming: "bad id"},
		{name: "overlong id replaced", incoming: strings.Repeat("a", maxRequestIDLen+1)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ctxID, correlation string
			h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = GetRequestID(r.Context())
				correlation = logging.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			header := rec.Header().Get(RequestIDHeader)
			if header == "" || header != ctxID {
				t.Fatalf("header %q and context %q should match and be set", header, ctxID)
			}
			if tt.wantSame && header != tt.incoming {
				t.Errorf("request id = %q, want %q", header, tt.incoming)
			}
			if !tt.wantSame && header == tt.incoming {
				t.Errorf("request id %q should have been replaced", header)
			}
			if correlation == "" {
				t.Error("correlation id should be set")
			}
		})
	}
}

// ===================================================================================================
// PrometheusMetrics
// ===================================================================================================

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/api/v1/options/{column}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/api/v1/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	pattern := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/options/{column}", "404")
	ok := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/ok", "200")
	beforePattern := testutil.ToFloat64(pattern)
	beforeOK := testutil.ToFloat64(ok)

	for _, path := range []string{"/api/v1/options/rating", "/api/v1/options/country", "/api/v1/ok"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(pattern) - beforePattern; got != 2 {
		t.Errorf("pattern series delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(ok) - beforeOK; got != 1 {
		t.Errorf("implicit 200 series delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.APIActiveRequests); got != 0 {
		t.Errorf("active requests = %v after completion, want 0", got)
	}
}

func TestRoutePattern_Unmatched(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	if got := routePattern(req); got != "unmatched" {
		t.Errorf("routePattern() = %q, want unmatched", got)
	}
}

// ===================================================================================================
// AccessLog
// ===================================================================================================

func TestAccessLog_Levels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		sleep     time.Duration
		threshold time.Duration
		wantLevel string
	}{
		{name: "fast ok is debug", status: http.StatusOK, threshold: time.Hour, wantLevel: `"level":"debug"`},
		{name: "server error", status: http.StatusInternalServerError, threshold: time.Hour, wantLevel: `"level":"error"`},
		{name: "slow request", status: http.StatusOK, sleep: 5 * time.Millisecond, threshold: time.Millisecond, wantLevel: `"level":"warn"`},
	}

	// Replaces the global logger, so not parallel.
	original := logging.Logger()
	level := logging.GetLevel()
	logging.SetLevelString("debug")
	defer func() {
		logging.SetLogger(original)
		logging.SetLevelString(level.String())
	}()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logging.SetLogger(logging.NewTestLogger(&buf))

			h := RequestID(AccessLog(tt.threshold)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(tt.sleep)
				w.WriteHeader(tt.status)
			})))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/dataset", nil))

			out := buf.String()
			for _, want := range []string{tt.wantLevel, `"path":"/api/v1/dataset"`, `"request_id"`, `"message":"http request"`} {
				if !strings.Contains(out, want) {
					t.Errorf("log %q missing %s", out, want)
				}
			}
		})
	}
}
