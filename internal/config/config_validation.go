// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	// defaultSendQueueSize bounds a connection's outbound event queue when
	// no explicit value is configured.
	defaultSendQueueSize = 64

	defaultPeerSweepInterval = 10 * time.Minute
	defaultPeerIdleHorizon   = 30 * 24 * time.Hour
	defaultTokenDuration     = time.Hour
)

// applyDefaults fills in zero-valued optional fields after all sources have
// been merged. Required fields (DSN, secrets, device ID) are left untouched
// and checked by validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Hub.SendQueueSize == 0 {
		cfg.Hub.SendQueueSize = defaultSendQueueSize
	}

	if cfg.Workers.PeerSweepInterval == 0 {
		cfg.Workers.PeerSweepInterval = defaultPeerSweepInterval
	}

	if cfg.Workers.PeerIdleHorizon == 0 {
		cfg.Workers.PeerIdleHorizon = defaultPeerIdleHorizon
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.DeviceID == "" || cfg.App.TokenSignKey == "" || cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Hub.SendQueueSize < 0 {
		return ErrInvalidHubConfigs
	}

	return nil
}
