// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hub

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport is an in-memory Transport. Written events land on the events
// channel; ReadMessage blocks until the transport is closed.
type fakeTransport struct {
	events    chan models.SyncEvent
	writeGate chan struct{} // when non-nil, WriteEvent blocks until it is closed
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		events: make(chan models.SyncEvent, 128),
		closed: make(chan struct{}),
	}
}

func (t *fakeTransport) WriteEvent(event models.SyncEvent) error {
	if t.writeGate != nil {
		select {
		case <-t.writeGate:
		case <-t.closed:
			return errors.New("transport closed")
		}
	}
	t.events <- event
	return nil
}

func (t *fakeTransport) ReadMessage() error {
	<-t.closed
	return errors.New("transport closed")
}

func (t *fakeTransport) Close() error {
	t.closeOnce.Do(func() { close(t.closed) })
	return nil
}

func (t *fakeTransport) isClosed() bool {
	select {
	case <-t.closed:
		return true
	default:
		return false
	}
}

func startHub(t *testing.T, queueSize int) *Hub {
	t.Helper()

	h := NewHub(queueSize, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)
	t.Cleanup(cancel)

	return h
}

func event(userID, gencount int64) models.SyncEvent {
	return models.SyncEvent{
		Type:      models.EventNewGeneration,
		UserID:    userID,
		Zone:      "passwords",
		GenCount:  gencount,
		Timestamp: time.Now(),
	}
}

func recvEvent(t *testing.T, transport *fakeTransport) models.SyncEvent {
	t.Helper()
	select {
	case ev := <-transport.events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event delivery")
		return models.SyncEvent{}
	}
}

func assertNoDelivery(t *testing.T, transport *fakeTransport) {
	t.Helper()
	select {
	case ev := <-transport.events:
		t.Fatalf("unexpected delivery: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

// ─────────────────────────────────────────────────────────────────────────────

func TestHub_BroadcastReachesAllUserConnections(t *testing.T) {
	h := startHub(t, 8)

	alicePhone := newFakeTransport()
	aliceLaptop := newFakeTransport()
	bobPhone := newFakeTransport()

	h.Register(h.NewConnection(1, alicePhone))
	h.Register(h.NewConnection(1, aliceLaptop))
	h.Register(h.NewConnection(2, bobPhone))
	time.Sleep(50 * time.Millisecond) // let registrations settle

	h.Broadcast(event(1, 7))

	assert.Equal(t, int64(7), recvEvent(t, alicePhone).GenCount)
	assert.Equal(t, int64(7), recvEvent(t, aliceLaptop).GenCount)
	assertNoDelivery(t, bobPhone)
}

func TestHub_EventsArriveInOrder(t *testing.T) {
	h := startHub(t, 8)

	transport := newFakeTransport()
	h.Register(h.NewConnection(1, transport))
	time.Sleep(50 * time.Millisecond)

	for gencount := int64(1); gencount <= 5; gencount++ {
		h.Broadcast(event(1, gencount))
	}

	for want := int64(1); want <= 5; want++ {
		assert.Equal(t, want, recvEvent(t, transport).GenCount)
	}
}

func TestHub_SlowConsumerIsDisconnected(t *testing.T) {
	h := startHub(t, 1)

	slow := newFakeTransport()
	slow.writeGate = make(chan struct{}) // never opened: writes hang
	fast := newFakeTransport()

	h.Register(h.NewConnection(1, slow))
	h.Register(h.NewConnection(1, fast))
	time.Sleep(50 * time.Millisecond)

	// With a queue of one and a wedged writer, a short burst must overflow
	// the slow connection.
	for gencount := int64(1); gencount <= 5; gencount++ {
		h.Broadcast(event(1, gencount))
	}

	require.Eventually(t, slow.isClosed, 2*time.Second, 10*time.Millisecond,
		"slow consumer must be forcibly disconnected")

	// The healthy connection is unaffected.
	for want := int64(1); want <= 5; want++ {
		assert.Equal(t, want, recvEvent(t, fast).GenCount)
	}
	assert.False(t, fast.isClosed())
}

func TestHub_UnregisterIsIdempotent(t *testing.T) {
	h := startHub(t, 8)

	transport := newFakeTransport()
	conn := h.NewConnection(1, transport)
	h.Register(conn)
	time.Sleep(50 * time.Millisecond)

	h.Unregister(conn)
	h.Unregister(conn)

	require.Eventually(t, transport.isClosed, 2*time.Second, 10*time.Millisecond)

	h.Broadcast(event(1, 1))
	assertNoDelivery(t, transport)
}

func TestHub_ReadFailureUnregistersConnection(t *testing.T) {
	h := startHub(t, 8)

	transport := newFakeTransport()
	h.Register(h.NewConnection(1, transport))
	time.Sleep(50 * time.Millisecond)

	// Simulate the device dropping the stream: ReadMessage starts failing.
	transport.Close()

	require.Eventually(t, func() bool {
		h.Broadcast(event(1, 1))
		select {
		case <-transport.events:
			return false
		default:
			return true
		}
	}, 2*time.Second, 50*time.Millisecond, "dead connection must stop receiving")
}

func TestHub_ShutdownClosesAllConnections(t *testing.T) {
	h := NewHub(8, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	first := newFakeTransport()
	second := newFakeTransport()
	h.Register(h.NewConnection(1, first))
	h.Register(h.NewConnection(2, second))
	time.Sleep(50 * time.Millisecond)

	cancel()

	require.Eventually(t, first.isClosed, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, second.isClosed, 2*time.Second, 10*time.Millisecond)

	// Late calls are dropped, never blocked.
	done := make(chan struct{})
	go func() {
		h.Broadcast(event(1, 99))
		h.Unregister(h.NewConnection(3, newFakeTransport()))
		h.Register(h.NewConnection(4, newFakeTransport()))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("hub calls blocked after shutdown")
	}
}
