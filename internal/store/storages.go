// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/keychain-sync/internal/logger"

// Storages bundles every repository behind one value so the service layer
// takes a single dependency.
type Storages struct {
	UserRepository UserRepository
	SyncRepository SyncRepository
	PeerRepository PeerRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		SyncRepository: NewSyncRepository(db, log),
		PeerRepository: NewPeerRepository(db, log),
	}
}
