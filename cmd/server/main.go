// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/keychain-sync/internal/config"
	"github.com/MKhiriev/keychain-sync/internal/crypto"
	"github.com/MKhiriev/keychain-sync/internal/hub"
	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/internal/service"
	"github.com/MKhiriev/keychain-sync/internal/store"
	"github.com/MKhiriev/keychain-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("keychain-sync-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	keyChain := crypto.NewKeyChainService()
	services := service.NewServices(storages, keyChain, cfg, log)

	notificationHub := hub.NewHub(cfg.Hub.SendQueueSize, log)

	background := workers.NewWorkers(
		workers.NewEventDispatcher(services.SyncService.Events(), notificationHub, log),
		workers.NewPeerSweeper(storages.PeerRepository, cfg.Workers, log),
	)

	go notificationHub.Run(ctx)

	log.Info().Str("device_id", cfg.App.DeviceID).Msg("keychain-sync server started")

	// Blocks until SIGINT/SIGTERM cancels ctx and every worker drains.
	background.Run(ctx)

	log.Info().Msg("keychain-sync server stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
