// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncRecord is the unit actually transmitted between devices. Exactly one
// record exists per (user, zone, item UUID) tuple; updates replace it with a
// strictly greater GenCount, never a smaller one.
//
// WrappedKey and EncItem are opaque ciphertext: the server moves them around
// but can never decrypt them.
type SyncRecord struct {
	// UserID is the owning account. Set server-side from the session.
	UserID int64 `json:"-"`

	// ItemUUID identifies the item within the zone.
	ItemUUID string `json:"item_uuid"`

	// Zone is the sync namespace the record belongs to.
	Zone string `json:"zone"`

	// ParentKeyUUID is the key-hierarchy edge: the UUID of the CryptoKey
	// this record's content key is wrapped under. Empty for roots.
	ParentKeyUUID string `json:"parent_key_uuid,omitempty"`

	// WrappedKey is the item's content key, wrapped client-side.
	WrappedKey []byte `json:"wrapped_key"`

	// EncItem is the item payload encrypted under the content key.
	EncItem []byte `json:"enc_item"`

	// EncVersion pins the cryptographic format of WrappedKey/EncItem so
	// that mixed-version devices detect incompatibility instead of failing
	// to decrypt silently.
	EncVersion int `json:"enc_version"`

	// ContextID scopes the record to a subkey derivation context.
	ContextID string `json:"context_id,omitempty"`

	// GenCount is the zone generation at which this version was written.
	GenCount int64 `json:"gencount"`

	// Tombstone marks a propagating deletion. Tombstones occupy a gencount
	// slot like any other write.
	Tombstone bool `json:"tombstone"`

	// Hash is an HMAC over the ciphertext fields, used for cheap equality
	// checks during reconciliation.
	Hash string `json:"hash,omitempty"`

	// UpdatedAt is the server-side write time. Informational only; ordering
	// is decided by GenCount, never by clocks.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// SyncOperation is an allocated mutation slot: the next gencount for a zone
// bound to the item it will write.
type SyncOperation struct {
	ItemUUID         string `json:"item_uuid"`
	Zone             string `json:"zone"`
	GenCount         int64  `json:"gencount"`
	PreviousGenCount int64  `json:"previous_gencount"`
	Tombstone        bool   `json:"tombstone"`
}

// SyncManifest is a compact, order-independent summary of a zone's live item
// set. Two manifests with an equal Digest hold equal leaf sets.
type SyncManifest struct {
	Zone string `json:"zone"`

	// GenCount is the zone's current high-water mark. Unequal gencounts do
	// not by themselves imply divergent content.
	GenCount int64 `json:"gencount"`

	// Digest is a version-pinned hash over the sorted leaf identifiers.
	Digest []byte `json:"digest"`

	// LeafIDs is the live (non-tombstoned) item set the digest covers.
	LeafIDs []string `json:"leaf_ids"`

	// DigestVersion pins the digest construction.
	DigestVersion int `json:"digest_version"`
}

// ManifestDiff is the set difference between a local and a remote leaf set.
type ManifestDiff struct {
	// Added lists leaf IDs present remotely but unknown locally.
	Added []string `json:"added"`

	// Removed lists leaf IDs present locally but absent remotely.
	Removed []string `json:"removed"`
}
