// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/models"
)

// peerRepository is the PostgreSQL-backed implementation of [PeerRepository].
type peerRepository struct {
	*DB
	logger *logger.Logger
}

// NewPeerRepository constructs a [PeerRepository] backed by the provided
// database connection and logger.
func NewPeerRepository(db *DB, logger *logger.Logger) PeerRepository {
	logger.Debug().Msg("creating peer repository")
	return &peerRepository{
		DB:     db,
		logger: logger,
	}
}

// LoadTrustedPeers returns every peer in the account's trust circle, ordered
// by peer id so trust-list snapshots are stable across calls.
func (p *peerRepository) LoadTrustedPeers(ctx context.Context, userID int64) ([]models.TrustedPeer, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, loadTrustedPeers, userID)
	if err != nil {
		log.Err(err).
			Str("func", "peerRepository.LoadTrustedPeers").
			Int64("user_id", userID).
			Msg("failed to load trusted peers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	peers := make([]models.TrustedPeer, 0, 10)

	for rows.Next() {
		var peer models.TrustedPeer

		scanErr := rows.Scan(
			&peer.UserID,
			&peer.PeerID,
			&peer.PublicKey,
			&peer.LastSeen,
			&peer.IsCurrentDevice,
			&peer.TrustLevel,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "peerRepository.LoadTrustedPeers").
				Int64("user_id", userID).
				Msg("failed to scan trusted peer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		peers = append(peers, peer)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "peerRepository.LoadTrustedPeers").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return peers, nil
}

// PersistTrustedPeer inserts or updates a peer record. The upsert is keyed by
// (user_id, peer_id), so re-establishing trust with the same device simply
// refreshes its public key and trust level.
func (p *peerRepository) PersistTrustedPeer(ctx context.Context, peer models.TrustedPeer) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, upsertTrustedPeer,
		peer.UserID,
		peer.PeerID,
		peer.PublicKey,
		peer.LastSeen,
		peer.IsCurrentDevice,
		peer.TrustLevel,
	)
	if err != nil {
		log.Err(err).
			Str("func", "peerRepository.PersistTrustedPeer").
			Int64("user_id", peer.UserID).
			Str("peer_id", peer.PeerID).
			Msg("failed to persist trusted peer")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "peerRepository.PersistTrustedPeer").
		Int64("user_id", peer.UserID).
		Str("peer_id", peer.PeerID).
		Bool("is_current_device", peer.IsCurrentDevice).
		Msg("persisted trusted peer")

	return nil
}

// DeleteTrustedPeer removes a peer from the trust circle.
func (p *peerRepository) DeleteTrustedPeer(ctx context.Context, userID int64, peerID string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteTrustedPeer, userID, peerID)
	if err != nil {
		log.Err(err).
			Str("func", "peerRepository.DeleteTrustedPeer").
			Int64("user_id", userID).
			Str("peer_id", peerID).
			Msg("failed to delete trusted peer")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "peerRepository.DeleteTrustedPeer").
			Int64("user_id", userID).
			Str("peer_id", peerID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPeerNotFound
	}

	return nil
}

// LoadIdlePeers scans all accounts for peers whose last_seen is older than
// idleBefore, skipping current devices.
func (p *peerRepository) LoadIdlePeers(ctx context.Context, idleBefore time.Time) ([]models.TrustedPeer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildIdlePeersQuery(idleBefore)
	if err != nil {
		log.Err(err).
			Str("func", "peerRepository.LoadIdlePeers").
			Msg("failed to build idle peers query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "peerRepository.LoadIdlePeers").
			Msg("failed to load idle peers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	peers := make([]models.TrustedPeer, 0, 10)

	for rows.Next() {
		var peer models.TrustedPeer

		scanErr := rows.Scan(
			&peer.UserID,
			&peer.PeerID,
			&peer.PublicKey,
			&peer.LastSeen,
			&peer.IsCurrentDevice,
			&peer.TrustLevel,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "peerRepository.LoadIdlePeers").
				Msg("failed to scan idle peer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		peers = append(peers, peer)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "peerRepository.LoadIdlePeers").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return peers, nil
}

// TouchPeer bumps a peer's last_seen timestamp to now.
func (p *peerRepository) TouchPeer(ctx context.Context, userID int64, peerID string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, touchTrustedPeer, userID, peerID)
	if err != nil {
		log.Err(err).
			Str("func", "peerRepository.TouchPeer").
			Int64("user_id", userID).
			Str("peer_id", peerID).
			Msg("failed to touch trusted peer")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "peerRepository.TouchPeer").
			Int64("user_id", userID).
			Str("peer_id", peerID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPeerNotFound
	}

	return nil
}
