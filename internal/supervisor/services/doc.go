// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

// Package services adapts the server's long-running components to
// suture.Service: the HTTP server, the WebSocket session hub and the
// response cache sweeper. Each wrapper depends on a small interface rather
// than the concrete type so it can be tested with fakes.
package services
