// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package websocket

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/reelscope/internal/binding"
	"github.com/tomtom215/reelscope/internal/logging"
	"github.com/tomtom215/reelscope/internal/metrics"
)

// ShutdownReason identifies why the hub is shutting down.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled is the normal graceful shutdown path (e.g. SIGTERM).
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline may indicate a hung operation during shutdown.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// ErrHubStopped is returned by Accept when the hub is not running.
var ErrHubStopped = errors.New("websocket hub stopped")

// Config bounds the sessions served by a hub.
type Config struct {
	MaxSessions int
	ChangeRate  float64 // change messages per second per session
	ChangeBurst int
}

// Hub tracks live dashboard sessions. Each client owns one binding session;
// the hub only manages their lifecycle.
type Hub struct {
	binder *binding.Binder
	cfg    Config

	clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client

	// admitted counts reserved session slots, including clients that are
	// still upgrading and not yet registered.
	admitted int

	// stopped is closed when RunWithContext returns.
	stopped chan struct{}

	mu sync.RWMutex
}

// NewHub creates a hub serving pages from binder.
func NewHub(binder *binding.Binder, cfg Config) *Hub {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 256
	}
	if cfg.ChangeRate <= 0 {
		cfg.ChangeRate = 10
	}
	if cfg.ChangeBurst <= 0 {
		cfg.ChangeBurst = 20
	}
	return &Hub{
		binder:     binder,
		cfg:        cfg,
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		stopped:    make(chan struct{}),
	}
}

// Admit reserves a session slot. It returns false when WS_MAX_SESSIONS
// sessions are already admitted.
func (h *Hub) Admit() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.admitted >= h.cfg.MaxSessions {
		metrics.WSConnectionsRejected.Inc()
		return false
	}
	h.admitted++
	return true
}

// Release frees a slot reserved by Admit that never became a client.
func (h *Hub) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.admitted > 0 {
		h.admitted--
	}
}

// Accept wraps an upgraded connection in a client, registers it and starts
// its pumps. The caller must have reserved a slot with Admit. On error the
// slot is released and the connection closed.
func (h *Hub) Accept(reqCtx context.Context, conn *websocket.Conn) error {
	client := NewClient(reqCtx, h, conn)

	select {
	case h.Register <- client:
	case <-h.stoppedChan():
		h.Release()
		if conn != nil {
			_ = conn.Close()
		}
		return ErrHubStopped
	}

	client.Start()
	return nil
}

func (h *Hub) stoppedChan() <-chan struct{} {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.stopped
}

// RunWithContext runs the hub until ctx is canceled, then closes every
// client. It is designed for use with suture supervision and may be run
// again after it returns.
//
// Context cancellation is checked first, then lifecycle events are served.
func (h *Hub) RunWithContext(ctx context.Context) error {
	h.mu.Lock()
	select {
	case <-h.stopped:
		h.stopped = make(chan struct{})
	default:
	}
	stopped := h.stopped
	h.mu.Unlock()
	defer close(stopped)

	for {
		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()

		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			metrics.TrackWSConnection(true)
			logging.Debug().Str("session_id", client.sessionID).Int("total_clients", total).Msg("websocket client connected")

		case client := <-h.Unregister:
			h.mu.Lock()
			removed := h.removeLocked(client)
			total := len(h.clients)
			h.mu.Unlock()
			if removed {
				logging.Debug().Str("session_id", client.sessionID).Int("total_clients", total).Msg("websocket client disconnected")
			}
		}
	}
}

// removeLocked drops client and frees its slot. h.mu must be held.
func (h *Hub) removeLocked(client *Client) bool {
	if _, ok := h.clients[client]; !ok {
		return false
	}
	delete(h.clients, client)
	client.close()
	if h.admitted > 0 {
		h.admitted--
	}
	metrics.TrackWSConnection(false)
	return true
}

// unregister hands client back to the run loop, or returns immediately
// when the hub has stopped and already closed it.
func (h *Hub) unregister(client *Client) {
	select {
	case h.Unregister <- client:
	case <-h.stoppedChan():
	}
}

// logGracefulShutdown closes all clients and logs the shutdown. ctx.Err()
// is not logged as an error: cancellation is the expected path.
func (h *Hub) logGracefulShutdown(ctx context.Context) {
	clientCount := h.GetClientCount()
	h.closeAllClients()

	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", clientCount).
		Msg("websocket hub stopped")
}

func getShutdownReason(ctx context.Context) ShutdownReason {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}

// closeAllClients closes clients in connection order.
func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})

	for _, client := range clients {
		h.removeLocked(client)
	}
}

// GetClientCount returns the number of registered clients.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
