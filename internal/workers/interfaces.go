// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the server's background processes and a small
// aggregate for running them together: the event dispatcher bridging the
// sync engine into the notification hub, and the peer sweeper reporting
// idle devices.
package workers

import (
	"context"

	"github.com/MKhiriev/keychain-sync/models"
)

// Worker is a long-running background process. Run blocks until ctx is
// cancelled or the worker's input is exhausted.
type Worker interface {
	Run(ctx context.Context)
}

// Broadcaster is the hub-facing contract the event dispatcher publishes to.
type Broadcaster interface {
	Broadcast(event models.SyncEvent)
}
