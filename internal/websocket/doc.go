// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

/*
Package websocket serves live dashboard sessions over gorilla/websocket.

Every connection owns one binding.Session. The client's read goroutine is the
only goroutine that touches it, so sessions need no locking. The Hub tracks
connected clients, enforces WS_MAX_SESSIONS and closes every client when its
context is canceled.

Frames are JSON objects {"type": ..., "data": ...}:

	client -> server
	  {"type":"navigate","data":{"path":"/cat-feature-frequency"}}
	  {"type":"change","data":{"control":"feature-dropdown","value":"rating"}}
	  {"type":"ping"}

	server -> client
	  {"type":"state","data":{"page":...,"widgets":[...],"figure":{...}}}
	  {"type":"update","data":{"page":...,"changed":[...],"widgets":[...],"figure":{...}}}
	  {"type":"error","data":{"code":"INVALID_VALUE","message":"..."}}
	  {"type":"pong","data":null}

Change frames pass through a per-session token bucket (golang.org/x/time/rate);
frames over the limit are answered with a RATE_LIMITED error and dropped.

Server wiring:

	hub := websocket.NewHub(binder, websocket.Config{MaxSessions: 256, ChangeRate: 10, ChangeBurst: 20})
	// run under the supervisor: hub.RunWithContext(ctx)

	if !hub.Admit() {
	    // 503
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
	    hub.Release()
	    return
	}
	_ = hub.Accept(r.Context(), conn)
*/
package websocket
