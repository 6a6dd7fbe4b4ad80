// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hub implements the realtime notification hub: it fans sync events
// out to every live connection of the affected user.
//
// All mutations of the user→connections map happen inside a single control
// goroutine started by Run, so the map itself needs no locking. Register,
// Unregister and Broadcast only exchange messages with that goroutine.
package hub

import (
	"context"

	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/models"
)

// Hub routes sync events to registered connections grouped by user.
type Hub struct {
	// connections maps a user ID to that user's live connections.
	// Owned exclusively by the control loop in Run.
	connections map[int64]map[*Connection]struct{}

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan models.SyncEvent

	// done is closed when the control loop exits. Calls arriving after that
	// point are dropped instead of blocking forever.
	done chan struct{}

	// sendQueueSize is the outbound queue capacity given to each connection.
	sendQueueSize int

	logger *logger.Logger
}

// NewHub constructs a Hub with the given per-connection queue capacity.
// The hub is inert until Run is called.
func NewHub(sendQueueSize int, logger *logger.Logger) *Hub {
	return &Hub{
		connections:   make(map[int64]map[*Connection]struct{}),
		register:      make(chan *Connection),
		unregister:    make(chan *Connection),
		broadcast:     make(chan models.SyncEvent, 64),
		done:          make(chan struct{}),
		sendQueueSize: sendQueueSize,
		logger:        logger,
	}
}

// Register announces a new connection to the control loop and starts its
// read and write pumps.
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		conn.close()
	}
}

// Unregister removes a connection from the hub. Safe to call more than once
// and after the hub has stopped.
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Broadcast queues an event for delivery to every live connection of
// event.UserID. It never blocks the caller: if the hub has stopped the event
// is dropped.
func (h *Hub) Broadcast(event models.SyncEvent) {
	select {
	case h.broadcast <- event:
	case <-h.done:
		h.logger.Warn().
			Int64("user_id", event.UserID).
			Str("zone", event.Zone).
			Msg("hub stopped, event dropped")
	}
}

// Run executes the control loop until ctx is cancelled. On exit every live
// connection is closed and late calls to Register/Unregister/Broadcast
// become no-ops.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for _, conns := range h.connections {
			for conn := range conns {
				conn.close()
			}
		}
		h.connections = nil
		h.logger.Info().Msg("hub stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case conn := <-h.register:
			h.add(conn)

		case conn := <-h.unregister:
			h.remove(conn)

		case event := <-h.broadcast:
			h.fanOut(event)
		}
	}
}

func (h *Hub) add(conn *Connection) {
	conns, ok := h.connections[conn.UserID]
	if !ok {
		conns = make(map[*Connection]struct{})
		h.connections[conn.UserID] = conns
	}
	conns[conn] = struct{}{}

	go conn.writePump()
	go conn.readPump()

	h.logger.Debug().
		Int64("user_id", conn.UserID).
		Int("live", len(conns)).
		Msg("connection registered")
}

// remove detaches conn and closes it. The membership check makes removal
// idempotent: the read pump, the fan-out path and external callers may all
// report the same connection.
func (h *Hub) remove(conn *Connection) {
	conns, ok := h.connections[conn.UserID]
	if !ok {
		return
	}
	if _, ok := conns[conn]; !ok {
		return
	}

	delete(conns, conn)
	if len(conns) == 0 {
		delete(h.connections, conn.UserID)
	}
	conn.close()

	h.logger.Debug().
		Int64("user_id", conn.UserID).
		Msg("connection unregistered")
}

// fanOut enqueues event on every connection of the target user. A connection
// whose queue is full cannot keep up and is forcibly disconnected; the rest
// of the user's connections are unaffected.
func (h *Hub) fanOut(event models.SyncEvent) {
	for conn := range h.connections[event.UserID] {
		select {
		case conn.send <- event:
		default:
			h.logger.Warn().
				Int64("user_id", conn.UserID).
				Msg("send queue full, disconnecting slow consumer")
			h.remove(conn)
		}
	}
}
