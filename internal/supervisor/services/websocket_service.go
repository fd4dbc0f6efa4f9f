// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package services

import "context"

// SessionHub is satisfied by *websocket.Hub.
type SessionHub interface {
	RunWithContext(ctx context.Context) error
}

// WebSocketHubService supervises the live dashboard session hub. The hub
// closes every session when ctx is canceled and may be run again after a
// restart; new sessions are refused while it is down.
type WebSocketHubService struct {
	hub  SessionHub
	name string
}

// NewWebSocketHubService wraps hub.
func NewWebSocketHubService(hub SessionHub) *WebSocketHubService {
	return &WebSocketHubService{hub: hub, name: "websocket-hub"}
}

// Serve implements suture.Service.
func (w *WebSocketHubService) Serve(ctx context.Context) error {
	return w.hub.RunWithContext(ctx)
}

func (w *WebSocketHubService) String() string {
	return w.name
}
