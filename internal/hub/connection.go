// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hub

import (
	"sync"

	"github.com/MKhiriev/keychain-sync/models"
)

// Transport is the wire-level endpoint a connection pumps events into.
// Implementations adapt a concrete stream (websocket, gRPC stream, long
// poll) to the hub; the hub itself stays transport-agnostic.
type Transport interface {
	// WriteEvent delivers one event to the remote device.
	WriteEvent(event models.SyncEvent) error

	// ReadMessage blocks until the remote side sends a keep-alive or the
	// stream breaks. A non-nil error means the connection is gone.
	ReadMessage() error

	// Close tears down the underlying stream. Must be safe to call after a
	// failed read or write.
	Close() error
}

// Connection binds one device's transport to the hub with a bounded outbound
// queue drained by a dedicated write pump.
type Connection struct {
	// UserID is the account this connection belongs to; events for other
	// users never reach it.
	UserID int64

	hub       *Hub
	transport Transport

	// send is the bounded outbound queue. Only the hub's control loop writes
	// to it; closing it stops the write pump.
	send chan models.SyncEvent

	closeOnce sync.Once
}

// NewConnection wires a transport to the hub for the given user. The caller
// must pass the result to Hub.Register before events can flow.
func (h *Hub) NewConnection(userID int64, transport Transport) *Connection {
	return &Connection{
		UserID:    userID,
		hub:       h,
		transport: transport,
		send:      make(chan models.SyncEvent, h.sendQueueSize),
	}
}

// close shuts the outbound queue and the transport exactly once.
func (c *Connection) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.transport.Close()
	})
}

// writePump drains the outbound queue into the transport. It exits when the
// queue is closed or a write fails; a failed write reports the connection
// back to the hub.
func (c *Connection) writePump() {
	for event := range c.send {
		if err := c.transport.WriteEvent(event); err != nil {
			c.hub.logger.Debug().
				Int64("user_id", c.UserID).
				Err(err).
				Msg("event write failed")
			c.hub.Unregister(c)
			return
		}
	}
}

// readPump watches the inbound side for keep-alives and disconnects. Any
// read error means the device went away, so the connection unregisters
// itself.
func (c *Connection) readPump() {
	for {
		if err := c.transport.ReadMessage(); err != nil {
			c.hub.Unregister(c)
			return
		}
	}
}
