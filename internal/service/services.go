// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/keychain-sync/internal/config"
	"github.com/MKhiriev/keychain-sync/internal/crypto"
	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/internal/store"
	"github.com/MKhiriev/keychain-sync/internal/utils"
)

type Services struct {
	AuthService AuthService
	SyncService SyncService
}

func NewServices(storages *store.Storages, keyChain crypto.KeyChainService, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, keyChain, cfg.App, logger),
		SyncService: NewSyncService(storages.SyncRepository, utils.NewHasher(cfg.App.HashKey), NewLastWriterWins(), logger),
	}
}
