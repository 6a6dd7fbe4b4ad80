// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/models"
)

// maxWriteAttempts bounds retries of gencount writes classified as
// transient. Concurrent pushes to one zone contend on the zone_counters
// row; a rolled-back transaction simply allocates the next gencount when
// retried.
const maxWriteAttempts = 3

// syncRepository is the PostgreSQL-backed implementation of [SyncRepository].
// It owns the zone_counters and sync_records tables.
//
// Every public method obtains a context-scoped logger via [logger.FromContext]
// so that all database interactions are traced with structured fields
// (user_id, zone, item_uuid, gencount).
type syncRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncRepository constructs a [SyncRepository] backed by the provided
// database connection and logger.
func NewSyncRepository(db *DB, logger *logger.Logger) SyncRepository {
	logger.Debug().Msg("creating sync repository")
	return &syncRepository{
		DB:     db,
		logger: logger,
	}
}

// AllocateGenCount advances the (user, zone) logical clock and returns the
// new value. The counter upsert serializes concurrent callers on the counter
// row, so each caller observes a distinct, contiguous value.
//
// Serialization failures and other transient errors are retried up to
// [maxWriteAttempts] times; see [PostgresErrorClassifier].
func (s *syncRepository) AllocateGenCount(ctx context.Context, userID int64, zone string) (int64, error) {
	log := logger.FromContext(ctx)

	var gencount int64
	var err error
	for attempt := 1; ; attempt++ {
		err = s.DB.QueryRowContext(ctx, allocateGenCount, userID, zone).Scan(&gencount)
		if err == nil {
			return gencount, nil
		}
		if attempt == maxWriteAttempts || s.errorClassificator.Classify(err) != Retryable {
			break
		}
		log.Warn().
			Str("func", "syncRepository.AllocateGenCount").
			Int64("user_id", userID).
			Str("zone", zone).
			Int("attempt", attempt).
			Msg("retrying gencount allocation after transient failure")
	}

	log.Err(err).
		Str("func", "syncRepository.AllocateGenCount").
		Int64("user_id", userID).
		Str("zone", zone).
		Msg("failed to allocate gencount")
	return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// LoadCurrentGenCount returns the zone's high-water mark, or 0 for a zone
// that has never allocated.
func (s *syncRepository) LoadCurrentGenCount(ctx context.Context, userID int64, zone string) (int64, error) {
	log := logger.FromContext(ctx)

	var gencount int64
	err := s.DB.QueryRowContext(ctx, getCurrentGenCount, userID, zone).Scan(&gencount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.LoadCurrentGenCount").
			Int64("user_id", userID).
			Str("zone", zone).
			Msg("failed to load current gencount")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return gencount, nil
}

// AllocateAndPersist allocates the next zone gencount and upserts record with
// it in a single atomic statement (CTE over zone_counters + guarded upsert).
//
// The guard rejects the write when the stored row already carries a greater
// or equal gencount — possible only if a concurrent writer won the counter
// race and persisted first. That outcome surfaces as [ErrRecordNotPersisted];
// the caller re-reads and re-resolves.
//
// Transient failures (serialization, deadlock, lost connection) are retried
// up to [maxWriteAttempts] times before surfacing.
func (s *syncRepository) AllocateAndPersist(ctx context.Context, record models.SyncRecord) (int64, error) {
	log := logger.FromContext(ctx)

	var gencount int64
	var err error
	for attempt := 1; ; attempt++ {
		err = s.DB.QueryRowContext(ctx, allocateAndPersistRecord,
			record.UserID,
			record.Zone,
			record.ItemUUID,
			record.ParentKeyUUID,
			record.WrappedKey,
			record.EncItem,
			record.EncVersion,
			record.ContextID,
			record.Tombstone,
			record.Hash,
		).Scan(&gencount)

		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "syncRepository.AllocateAndPersist").
				Int64("user_id", record.UserID).
				Str("zone", record.Zone).
				Str("item_uuid", record.ItemUUID).
				Msg("upsert guard rejected the write: a newer version is already stored")
			return 0, ErrRecordNotPersisted
		}
		if err == nil {
			break
		}
		if attempt == maxWriteAttempts || s.errorClassificator.Classify(err) != Retryable {
			log.Err(err).
				Str("func", "syncRepository.AllocateAndPersist").
				Int64("user_id", record.UserID).
				Str("zone", record.Zone).
				Str("item_uuid", record.ItemUUID).
				Msg("failed to allocate gencount and persist record")
			return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		log.Warn().
			Str("func", "syncRepository.AllocateAndPersist").
			Int64("user_id", record.UserID).
			Str("zone", record.Zone).
			Str("item_uuid", record.ItemUUID).
			Int("attempt", attempt).
			Msg("retrying record write after transient failure")
	}

	log.Debug().
		Str("func", "syncRepository.AllocateAndPersist").
		Int64("user_id", record.UserID).
		Str("zone", record.Zone).
		Str("item_uuid", record.ItemUUID).
		Int64("gencount", gencount).
		Bool("tombstone", record.Tombstone).
		Msg("persisted sync record")

	return gencount, nil
}

// LoadSyncRecord returns the stored version of one item.
//
// Returns [ErrRecordNotFound] when the item has never been written; the sync
// engine treats that as "no conflict possible".
func (s *syncRepository) LoadSyncRecord(ctx context.Context, userID int64, zone, itemUUID string) (models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	var record models.SyncRecord
	err := s.DB.QueryRowContext(ctx, getSyncRecord, userID, zone, itemUUID).Scan(
		&record.UserID,
		&record.Zone,
		&record.ItemUUID,
		&record.ParentKeyUUID,
		&record.WrappedKey,
		&record.EncItem,
		&record.EncVersion,
		&record.ContextID,
		&record.GenCount,
		&record.Tombstone,
		&record.Hash,
		&record.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.LoadSyncRecord").
			Int64("user_id", userID).
			Str("zone", zone).
			Str("item_uuid", itemUUID).
			Msg("failed to load sync record")
		return models.SyncRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// LoadRecordsSince returns every record in the zone with
// GenCount > sinceGenCount, tombstones included, ordered by gencount.
func (s *syncRepository) LoadRecordsSince(ctx context.Context, userID int64, zone string, sinceGenCount int64) ([]models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordsSinceQuery(userID, zone, sinceGenCount)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.LoadRecordsSince").
			Int64("user_id", userID).
			Str("zone", zone).
			Msg("failed to build query")
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.LoadRecordsSince").
			Int64("user_id", userID).
			Str("zone", zone).
			Int64("since_gencount", sinceGenCount).
			Msg("failed to execute incremental pull query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.SyncRecord, 0, 50)

	for rows.Next() {
		var record models.SyncRecord

		scanErr := rows.Scan(
			&record.UserID,
			&record.Zone,
			&record.ItemUUID,
			&record.ParentKeyUUID,
			&record.WrappedKey,
			&record.EncItem,
			&record.EncVersion,
			&record.ContextID,
			&record.GenCount,
			&record.Tombstone,
			&record.Hash,
			&record.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncRepository.LoadRecordsSince").
				Int64("user_id", userID).
				Str("zone", zone).
				Msg("failed to scan sync record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncRepository.LoadRecordsSince").
			Int64("user_id", userID).
			Str("zone", zone).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// LoadLeafIDs returns the item UUIDs of all live records in the zone,
// sorted ascending so manifest digests are computed over a canonical order.
func (s *syncRepository) LoadLeafIDs(ctx context.Context, userID int64, zone string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLeafIDsQuery(userID, zone)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.LoadLeafIDs").
			Int64("user_id", userID).
			Str("zone", zone).
			Msg("failed to build query")
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.LoadLeafIDs").
			Int64("user_id", userID).
			Str("zone", zone).
			Msg("failed to execute leaf id query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	leafIDs := make([]string, 0, 50)

	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncRepository.LoadLeafIDs").
				Int64("user_id", userID).
				Str("zone", zone).
				Msg("failed to scan leaf id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		leafIDs = append(leafIDs, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncRepository.LoadLeafIDs").
			Int64("user_id", userID).
			Str("zone", zone).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return leafIDs, nil
}
