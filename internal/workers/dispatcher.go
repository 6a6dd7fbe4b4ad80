// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/models"
)

// EventDispatcher pumps sync events from the sync engine's publish channel
// into the notification hub, one at a time, preserving order.
type EventDispatcher struct {
	events <-chan models.SyncEvent
	hub    Broadcaster
	logger *logger.Logger
}

// NewEventDispatcher wires the engine's event channel to a broadcaster.
func NewEventDispatcher(events <-chan models.SyncEvent, hub Broadcaster, logger *logger.Logger) *EventDispatcher {
	return &EventDispatcher{
		events: events,
		hub:    hub,
		logger: logger,
	}
}

// Run forwards events until ctx is cancelled or the source channel closes.
func (d *EventDispatcher) Run(ctx context.Context) {
	d.logger.Info().Msg("event dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.logger.Info().Msg("event dispatcher stopped")
			return

		case event, ok := <-d.events:
			if !ok {
				d.logger.Info().Msg("event source closed, dispatcher stopped")
				return
			}

			d.hub.Broadcast(event)
			d.logger.Debug().
				Int64("user_id", event.UserID).
				Str("zone", event.Zone).
				Str("type", string(event.Type)).
				Int64("gencount", event.GenCount).
				Msg("event dispatched")
		}
	}
}
