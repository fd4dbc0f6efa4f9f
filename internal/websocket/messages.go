// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package websocket

import "github.com/goccy/go-json"

// Message types for WebSocket communication
const (
	// client -> server
	MessageTypeNavigate = "navigate"
	MessageTypeChange   = "change"
	MessageTypePing     = "ping"

	// server -> client
	MessageTypeState  = "state"
	MessageTypeUpdate = "update"
	MessageTypeError  = "error"
	MessageTypePong   = "pong"
)

// Error codes carried by "error" frames.
const (
	ErrCodeBadMessage     = "BAD_MESSAGE"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeNoPage         = "NO_PAGE"
	ErrCodeUnknownControl = "UNKNOWN_CONTROL"
	ErrCodeInvalidValue   = "INVALID_VALUE"
	ErrCodeRateLimited    = "RATE_LIMITED"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// Message represents an outbound WebSocket message
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// inbound is a client frame; Data is decoded according to Type.
type inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// NavigateData selects a page.
type NavigateData struct {
	Path string `json:"path"`
}

// ChangeData sets one control of the current page.
type ChangeData struct {
	Control string          `json:"control"`
	Value   json.RawMessage `json:"value"`
}

// ErrorData describes a rejected client frame.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
