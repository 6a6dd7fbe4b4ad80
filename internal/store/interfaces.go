// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/keychain-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncRepository is the persistence contract the sync engine depends on.
// Gencount allocation and record persistence must be atomic: two concurrent
// pushes to the same zone must never observe the same gencount, and an
// allocated gencount must never be persisted for a losing record.
type SyncRepository interface {
	// AllocateGenCount atomically advances the (user, zone) counter and
	// returns the new value. The first allocation for a zone returns 1.
	AllocateGenCount(ctx context.Context, userID int64, zone string) (int64, error)

	// LoadCurrentGenCount returns the zone's current high-water mark,
	// 0 for a zone that has never been written.
	LoadCurrentGenCount(ctx context.Context, userID int64, zone string) (int64, error)

	// AllocateAndPersist allocates the next gencount for the record's zone
	// and upserts the record with it in one transaction. The record's
	// GenCount field is ignored on input; the allocated value is returned.
	AllocateAndPersist(ctx context.Context, record models.SyncRecord) (int64, error)

	// LoadSyncRecord returns the stored version of one item, or
	// [ErrRecordNotFound] if the item has never been written.
	LoadSyncRecord(ctx context.Context, userID int64, zone, itemUUID string) (models.SyncRecord, error)

	// LoadRecordsSince returns every record with GenCount > sinceGenCount,
	// tombstones included, ordered by GenCount ascending.
	LoadRecordsSince(ctx context.Context, userID int64, zone string, sinceGenCount int64) ([]models.SyncRecord, error)

	// LoadLeafIDs returns the item UUIDs of all live (non-tombstoned)
	// records in the zone.
	LoadLeafIDs(ctx context.Context, userID int64, zone string) ([]string, error)
}

// PeerRepository persists an account's trusted-peer set.
type PeerRepository interface {
	// LoadTrustedPeers returns every peer in the account's trust circle.
	LoadTrustedPeers(ctx context.Context, userID int64) ([]models.TrustedPeer, error)

	// PersistTrustedPeer inserts or updates a peer (idempotent upsert keyed
	// by user_id + peer_id).
	PersistTrustedPeer(ctx context.Context, peer models.TrustedPeer) error

	// DeleteTrustedPeer removes a peer from the trust circle. Returns
	// [ErrPeerNotFound] when the peer is not in the set.
	DeleteTrustedPeer(ctx context.Context, userID int64, peerID string) error

	// TouchPeer bumps a peer's last_seen to now. Returns [ErrPeerNotFound]
	// when the peer is not in the set.
	TouchPeer(ctx context.Context, userID int64, peerID string) error

	// LoadIdlePeers returns, across all accounts, every peer whose last_seen
	// is older than idleBefore. Current devices are excluded.
	LoadIdlePeers(ctx context.Context, idleBefore time.Time) ([]models.TrustedPeer, error)
}

// UserRepository handles account creation and lookup.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
