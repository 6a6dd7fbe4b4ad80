// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/keychain-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService is the synchronization facade: gencount allocation, push/pull
// reconciliation, manifest computation, and change notification.
type SyncService interface {
	// Push reconciles a batch of encrypted records against the stored state
	// of one zone. Every record gets an individual outcome; conflicts are
	// resolved deterministically and never fail the call.
	Push(ctx context.Context, userID int64, zone string, records []models.SyncRecord) (models.PushResponse, error)

	// Pull returns every record written after lastKnownGenCount, tombstones
	// included, plus the zone's current gencount.
	Pull(ctx context.Context, userID int64, zone string, lastKnownGenCount int64) (models.PullResponse, error)

	// Manifest returns a compact, order-independent summary of the zone's
	// live item set.
	Manifest(ctx context.Context, userID int64, zone string) (models.SyncManifest, error)

	// IncrementGenCount advances the zone's logical clock and returns the
	// new value. Concurrent callers always observe distinct values.
	IncrementGenCount(ctx context.Context, userID int64, zone string) (int64, error)

	// CreateSyncOperation allocates the next mutation slot for an item.
	CreateSyncOperation(ctx context.Context, userID int64, zone, itemUUID string, prevGenCount int64) (models.SyncOperation, error)

	// MarkTombstone records a propagating deletion for an item. The
	// tombstone occupies a gencount slot like any other write.
	MarkTombstone(ctx context.Context, userID int64, zone, itemUUID string) (models.SyncOperation, error)

	// Events exposes the notification stream: one event per accepted push
	// batch and one per tombstone, consumed by the dispatcher worker.
	Events() <-chan models.SyncEvent
}

// AuthService handles account registration, credential verification, and the
// JWT session token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ConflictResolver decides which of two conflicting versions of an item
// survives. Implementations must be deterministic and total: Resolve never
// errors and always returns one of its two inputs.
type ConflictResolver interface {
	Resolve(local, remote models.SyncRecord) models.SyncRecord
}
