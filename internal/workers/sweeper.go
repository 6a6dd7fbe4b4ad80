// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/keychain-sync/internal/config"
	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/internal/store"
)

// PeerSweeper periodically scans the trusted-peer set for devices that have
// not been seen within the idle horizon. Idle peers are only reported in the
// log; revocation always remains a user decision.
type PeerSweeper struct {
	peers store.PeerRepository

	// interval is the time between consecutive sweeps.
	interval time.Duration

	// horizon is the last-seen age beyond which a peer counts as idle.
	horizon time.Duration

	logger *logger.Logger
}

// NewPeerSweeper constructs a sweeper from the workers configuration section.
func NewPeerSweeper(peers store.PeerRepository, cfg config.Workers, logger *logger.Logger) *PeerSweeper {
	return &PeerSweeper{
		peers:    peers,
		interval: cfg.PeerSweepInterval,
		horizon:  cfg.PeerIdleHorizon,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is cancelled.
func (s *PeerSweeper) Run(ctx context.Context) {
	s.logger.Info().
		Dur("interval", s.interval).
		Dur("horizon", s.horizon).
		Msg("peer sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("peer sweeper stopped")
			return

		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep reports every peer idle past the horizon. Errors are logged and the
// next tick retries; a failed sweep must never take the server down.
func (s *PeerSweeper) sweep(ctx context.Context) {
	idleBefore := time.Now().Add(-s.horizon)

	idlePeers, err := s.peers.LoadIdlePeers(ctx, idleBefore)
	if err != nil {
		s.logger.Err(err).Msg("idle peer scan failed")
		return
	}

	for _, peer := range idlePeers {
		s.logger.Warn().
			Int64("user_id", peer.UserID).
			Str("peer_id", peer.PeerID).
			Time("last_seen", peer.LastSeen).
			Msg("peer idle past horizon")
	}

	s.logger.Debug().
		Int("idle", len(idlePeers)).
		Time("idle_before", idleBefore).
		Msg("peer sweep finished")
}
