// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN
//	-c/-config json file path with configs
//	-device-id this server's peer identifier in every trust circle
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-hash-key record hash key
//	-hub-queue-size per-connection outbound queue capacity
//	-peer-sweep-interval idle-peer sweep interval (e.g., "10m")
//	-peer-idle-horizon LastSeen age after which a peer is reported idle
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var deviceID string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var hashKey string
	var hubQueueSize int
	var peerSweepInterval time.Duration
	var peerIdleHorizon time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&deviceID, "device-id", "", "Server device identifier")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&hashKey, "hash-key", "", "Record hash key")
	flag.IntVar(&hubQueueSize, "hub-queue-size", 0, "Per-connection outbound queue capacity")
	flag.DurationVar(&peerSweepInterval, "peer-sweep-interval", 0, "Idle-peer sweep interval (e.g., 10m)")
	flag.DurationVar(&peerIdleHorizon, "peer-idle-horizon", 0, "Idle-peer horizon (e.g., 720h)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DeviceID:      deviceID,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Hub: Hub{
			SendQueueSize: hubQueueSize,
		},
		Workers: Workers{
			PeerSweepInterval: peerSweepInterval,
			PeerIdleHorizon:   peerIdleHorizon,
		},
		JSONFilePath: jsonConfigPath,
	}
}
