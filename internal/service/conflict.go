// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/keychain-sync/models"

// DetectConflict reports whether two versions of the same item diverge.
// A gencount mismatch means concurrent edits; a ParentKeyUUID mismatch means
// the versions were wrapped under different key-hierarchy parents and must
// not be merged silently even at equal gencounts.
func DetectConflict(local, remote models.SyncRecord) bool {
	return local.GenCount != remote.GenCount ||
		local.ParentKeyUUID != remote.ParentKeyUUID
}

// LastWriterWins resolves conflicts by gencount: the strictly greater
// generation survives. Ties return local, so both sides of a tie keep their
// own version and converge on the next write.
type LastWriterWins struct{}

// NewLastWriterWins constructs the default [ConflictResolver].
func NewLastWriterWins() ConflictResolver {
	return LastWriterWins{}
}

// Resolve implements [ConflictResolver]. Total and deterministic.
func (LastWriterWins) Resolve(local, remote models.SyncRecord) models.SyncRecord {
	if remote.GenCount > local.GenCount {
		return remote
	}
	return local
}
