// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/models"
)

// recordingBroadcaster captures broadcast events for inspection.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []models.SyncEvent
}

func (b *recordingBroadcaster) Broadcast(event models.SyncEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBroadcaster) snapshot() []models.SyncEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.SyncEvent(nil), b.events...)
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !condition() {
		select {
		case <-deadline:
			t.Fatal("condition not met in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestEventDispatcher_ForwardsEventsInOrder(t *testing.T) {
	events := make(chan models.SyncEvent, 8)
	sink := &recordingBroadcaster{}
	dispatcher := NewEventDispatcher(events, sink, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dispatcher.Run(ctx)

	for gencount := int64(1); gencount <= 3; gencount++ {
		events <- models.SyncEvent{
			Type:     models.EventNewGeneration,
			UserID:   1,
			Zone:     "passwords",
			GenCount: gencount,
		}
	}

	waitFor(t, func() bool { return len(sink.snapshot()) == 3 })

	for i, event := range sink.snapshot() {
		if event.GenCount != int64(i+1) {
			t.Errorf("event %d: expected gencount %d, got %d", i, i+1, event.GenCount)
		}
	}
}

func TestEventDispatcher_StopsOnContextCancel(t *testing.T) {
	events := make(chan models.SyncEvent)
	dispatcher := NewEventDispatcher(events, &recordingBroadcaster{}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		dispatcher.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop after cancellation")
	}
}

func TestEventDispatcher_StopsWhenSourceCloses(t *testing.T) {
	events := make(chan models.SyncEvent, 1)
	sink := &recordingBroadcaster{}
	dispatcher := NewEventDispatcher(events, sink, logger.Nop())

	events <- models.SyncEvent{Type: models.EventCredentialDeleted, UserID: 1, Zone: "passwords"}
	close(events)

	done := make(chan struct{})
	go func() {
		dispatcher.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop after source closed")
	}

	got := sink.snapshot()
	if len(got) != 1 {
		t.Fatalf("expected the buffered event to be flushed, got %d events", len(got))
	}
	if got[0].Type != models.EventCredentialDeleted {
		t.Errorf("expected credential_deleted event, got %s", got[0].Type)
	}
}
