// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package websocket

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelscope/internal/binding"
	"github.com/tomtom215/reelscope/internal/logging"
	"github.com/tomtom215/reelscope/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBuffer     = 32
)

// clientIDCounter gives clients monotonically increasing IDs so that they
// can be closed in a stable order.
var clientIDCounter atomic.Uint64

// Client is a middleman between one websocket connection and its binding
// session. The session is only touched by readPump.
type Client struct {
	id        uint64
	sessionID string
	ctx       context.Context

	hub     *Hub
	conn    *websocket.Conn
	send    chan Message
	done    chan struct{}
	once    sync.Once
	session *binding.Session
	limiter *rate.Limiter
}

// NewClient creates a client with a fresh binding session. The request and
// correlation IDs of reqCtx, the upgrade request's context, are kept on every
// log line of the session; reqCtx's cancellation is not.
func NewClient(reqCtx context.Context, hub *Hub, conn *websocket.Conn) *Client {
	sessionID := logging.GenerateSessionID()
	return &Client{
		id:        clientIDCounter.Add(1),
		sessionID: sessionID,
		ctx:       sessionContext(reqCtx, sessionID),
		hub:       hub,
		conn:      conn,
		send:      make(chan Message, sendBuffer),
		done:      make(chan struct{}),
		session:   hub.binder.NewSession(),
		limiter:   rate.NewLimiter(rate.Limit(hub.cfg.ChangeRate), hub.cfg.ChangeBurst),
	}
}

func sessionContext(reqCtx context.Context, sessionID string) context.Context {
	ctx := context.Background()
	if reqCtx != nil {
		if id := logging.RequestIDFromContext(reqCtx); id != "" {
			ctx = logging.ContextWithRequestID(ctx, id)
		}
		if id := logging.CorrelationIDFromContext(reqCtx); id != "" {
			ctx = logging.ContextWithCorrelationID(ctx, id)
		}
	}
	return logging.ContextWithSessionID(ctx, sessionID)
}

// ID returns the client's connection-order identifier.
func (c *Client) ID() uint64 {
	return c.id
}

// SessionID returns the session identifier used in logs.
func (c *Client) SessionID() string {
	return c.sessionID
}

// close signals writePump to send a close frame and exit. Safe to call twice.
func (c *Client) close() {
	c.once.Do(func() { close(c.done) })
}

// enqueue queues an outbound message without blocking. A client that cannot
// keep up loses the message; it is closed by its own write deadline.
func (c *Client) enqueue(msg Message) {
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.send <- msg:
	case <-c.done:
	default:
		logging.Ctx(c.ctx).Warn().Str("message_type", msg.Type).Msg("websocket send buffer full, dropping message")
	}
}

func (c *Client) sendError(code, message string) {
	c.enqueue(Message{Type: MessageTypeError, Data: ErrorData{Code: code, Message: message}})
}

// readPump reads client frames and runs them against the session.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logging.Ctx(c.ctx).Warn().Err(err).Msg("unexpected websocket close error")
			}
			return
		}
		c.handle(payload)
	}
}

// handle dispatches one client frame.
func (c *Client) handle(payload []byte) {
	var msg inbound
	if err := json.Unmarshal(payload, &msg); err != nil {
		metrics.RecordWSMessage("in", "invalid")
		c.sendError(ErrCodeBadMessage, "message is not valid JSON")
		return
	}

	switch msg.Type {
	case MessageTypePing:
		metrics.RecordWSMessage("in", MessageTypePing)
		c.enqueue(Message{Type: MessageTypePong})

	case MessageTypeNavigate:
		metrics.RecordWSMessage("in", MessageTypeNavigate)
		var data NavigateData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(ErrCodeBadMessage, "navigate requires {\"path\": string}")
			return
		}
		c.navigate(data.Path)

	case MessageTypeChange:
		metrics.RecordWSMessage("in", MessageTypeChange)
		var data ChangeData
		if err := json.Unmarshal(msg.Data, &data); err != nil || data.Control == "" {
			c.sendError(ErrCodeBadMessage, "change requires {\"control\": string, \"value\": any}")
			return
		}
		if !c.limiter.Allow() {
			c.sendError(ErrCodeRateLimited, "too many changes, slow down")
			return
		}
		c.change(data)

	default:
		metrics.RecordWSMessage("in", "unknown")
		c.sendError(ErrCodeBadMessage, "unknown message type "+msg.Type)
	}
}

func (c *Client) navigate(path string) {
	state, err := c.session.Navigate(c.ctx, path)
	if err != nil {
		if errors.Is(err, binding.ErrUnknownPage) {
			c.sendError(ErrCodeNotFound, binding.NotFoundMessage(path))
			return
		}
		c.sendError(ErrCodeInternal, "failed to render page")
		return
	}
	c.enqueue(Message{Type: MessageTypeState, Data: state})
}

func (c *Client) change(data ChangeData) {
	value := data.Value
	if len(value) == 0 {
		value = json.RawMessage("null")
	}

	upd, err := c.session.Change(c.ctx, data.Control, value)
	switch {
	case err == nil:
		c.enqueue(Message{Type: MessageTypeUpdate, Data: upd})
	case errors.Is(err, binding.ErrInvalidValue):
		c.sendError(ErrCodeInvalidValue, err.Error())
	case errors.Is(err, binding.ErrUnknownControl):
		c.sendError(ErrCodeUnknownControl, err.Error())
	case errors.Is(err, binding.ErrNoPage):
		c.sendError(ErrCodeNoPage, "navigate to a page first")
	default:
		logging.Ctx(c.ctx).Error().Err(err).Str("control", data.Control).Msg("binding update failed")
		c.sendError(ErrCodeInternal, "failed to update page")
	}
}

// writePump writes queued messages and keepalive pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			payload, err := json.Marshal(message)
			if err != nil {
				logging.Ctx(c.ctx).Error().Err(err).Str("message_type", message.Type).Msg("failed to encode websocket message")
				continue
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logging.Ctx(c.ctx).Debug().Err(err).Msg("failed to write websocket message")
				return
			}
			metrics.RecordWSMessage("out", message.Type)

		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Start begins reading and writing for the client.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
