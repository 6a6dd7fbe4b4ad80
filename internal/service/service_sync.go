// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/internal/store"
	"github.com/MKhiriev/keychain-sync/internal/utils"
	"github.com/MKhiriev/keychain-sync/models"
)

// eventBufferSize bounds the notification stream. A full buffer drops the
// event rather than blocking a push; receivers recover by pulling.
const eventBufferSize = 64

// syncService is the concrete implementation of SyncService. All versioning
// decisions are made against the store's gencounts; wall clocks are recorded
// but never consulted.
type syncService struct {
	syncRepository store.SyncRepository

	// resolver breaks conflicts deterministically. Both sides of a sync run
	// the same resolver over the same two versions, so they converge without
	// coordination.
	resolver ConflictResolver

	// hasher fingerprints ciphertext fields so unchanged records can be
	// recognised without comparing payloads byte by byte.
	hasher *utils.Hasher

	events chan models.SyncEvent
	logger *logger.Logger
}

// NewSyncService constructs the sync engine. A nil resolver defaults to
// last-writer-wins.
func NewSyncService(syncRepository store.SyncRepository, hasher *utils.Hasher, resolver ConflictResolver, logger *logger.Logger) SyncService {
	if resolver == nil {
		resolver = NewLastWriterWins()
	}
	return &syncService{
		syncRepository: syncRepository,
		resolver:       resolver,
		hasher:         hasher,
		events:         make(chan models.SyncEvent, eventBufferSize),
		logger:         logger,
	}
}

// Push reconciles a batch of records against one zone.
//
// Per record:
//   - a base generation ahead of the zone counter is answered with a stale
//     outcome — the device is asked to pull, never trusted to have seen the
//     future;
//   - an unknown item is accepted outright;
//   - a known item goes through conflict detection and deterministic
//     resolution; the losing pushed version is reported superseded.
//
// Gencount allocation failures abort the whole push. Detection and
// resolution never error.
//
// One event is emitted per accepted batch: a batch that rewrote at least one
// existing item announces a credential change, a batch that only introduced
// new items announces a new generation.
func (s *syncService) Push(ctx context.Context, userID int64, zone string, records []models.SyncRecord) (models.PushResponse, error) {
	log := logger.FromContext(ctx)

	if zone == "" || len(records) == 0 {
		return models.PushResponse{}, ErrInvalidDataProvided
	}

	results := make([]models.PushResult, 0, len(records))
	accepted := false
	changed := false

	for _, incoming := range records {
		incoming.UserID = userID
		incoming.Zone = zone

		result, rewrote, err := s.pushOne(ctx, incoming)
		if err != nil {
			log.Err(err).
				Str("func", "syncService.Push").
				Str("zone", zone).
				Str("item_uuid", incoming.ItemUUID).
				Msg("push aborted")
			return models.PushResponse{}, fmt.Errorf("push failed for item %s: %w", incoming.ItemUUID, err)
		}

		if result.Outcome == models.OutcomeAccepted {
			accepted = true
			changed = changed || rewrote
		}
		results = append(results, result)
	}

	gencount, err := s.syncRepository.LoadCurrentGenCount(ctx, userID, zone)
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("error loading zone gencount: %w", err)
	}

	if accepted {
		eventType := models.EventNewGeneration
		if changed {
			eventType = models.EventCredentialChanged
		}
		s.emit(eventType, userID, zone, gencount)
	}

	return models.PushResponse{Zone: zone, GenCount: gencount, Results: results}, nil
}

// pushOne decides the fate of a single record. The incoming GenCount is the
// device's base version: the generation it last saw for this item.
//
// The second return value reports whether an accepted record rewrote an
// already stored version; Push uses it to pick the batch event type.
func (s *syncService) pushOne(ctx context.Context, incoming models.SyncRecord) (models.PushResult, bool, error) {
	currentGen, err := s.syncRepository.LoadCurrentGenCount(ctx, incoming.UserID, incoming.Zone)
	if err != nil {
		return models.PushResult{}, false, fmt.Errorf("error loading zone gencount: %w", err)
	}

	if incoming.GenCount > currentGen {
		logger.FromContext(ctx).Warn().
			Str("func", "syncService.pushOne").
			Str("zone", incoming.Zone).
			Str("item_uuid", incoming.ItemUUID).
			Int64("base_gencount", incoming.GenCount).
			Int64("zone_gencount", currentGen).
			Msg("base generation ahead of zone counter")
		return models.PushResult{
			ItemUUID: incoming.ItemUUID,
			Outcome:  models.OutcomeStale,
			GenCount: currentGen,
		}, false, nil
	}

	stored, err := s.syncRepository.LoadSyncRecord(ctx, incoming.UserID, incoming.Zone, incoming.ItemUUID)
	if errors.Is(err, store.ErrRecordNotFound) {
		result, err := s.persistWinner(ctx, incoming)
		return result, false, err
	}
	if err != nil {
		return models.PushResult{}, false, fmt.Errorf("error loading stored record: %w", err)
	}

	if !DetectConflict(stored, incoming) {
		// Same base, same key parent: a plain fast-forward update. Identical
		// ciphertext needs no new generation at all.
		if stored.Hash == s.recordHash(incoming) && stored.Tombstone == incoming.Tombstone {
			return models.PushResult{
				ItemUUID: incoming.ItemUUID,
				Outcome:  models.OutcomeAccepted,
				GenCount: stored.GenCount,
			}, false, nil
		}
		result, err := s.persistWinner(ctx, incoming)
		return result, true, err
	}

	// The resolver returns one of its two inputs, so the surviving version
	// is identified structurally. A stored winner means the push lost.
	winner := s.resolver.Resolve(stored, incoming)
	if reflect.DeepEqual(winner, stored) {
		return models.PushResult{
			ItemUUID: incoming.ItemUUID,
			Outcome:  models.OutcomeSuperseded,
			GenCount: stored.GenCount,
		}, false, nil
	}

	result, err := s.persistWinner(ctx, winner)
	return result, true, err
}

// persistWinner allocates the next gencount and stores record under it.
// Losing a concurrent race surfaces as a superseded outcome, never an error.
func (s *syncService) persistWinner(ctx context.Context, record models.SyncRecord) (models.PushResult, error) {
	record.Hash = s.recordHash(record)

	gencount, err := s.syncRepository.AllocateAndPersist(ctx, record)
	if errors.Is(err, store.ErrRecordNotPersisted) {
		latest, loadErr := s.syncRepository.LoadSyncRecord(ctx, record.UserID, record.Zone, record.ItemUUID)
		if loadErr != nil {
			return models.PushResult{}, fmt.Errorf("error reloading record after lost race: %w", loadErr)
		}
		return models.PushResult{
			ItemUUID: record.ItemUUID,
			Outcome:  models.OutcomeSuperseded,
			GenCount: latest.GenCount,
		}, nil
	}
	if err != nil {
		return models.PushResult{}, fmt.Errorf("error persisting record: %w", err)
	}

	return models.PushResult{
		ItemUUID: record.ItemUUID,
		Outcome:  models.OutcomeAccepted,
		GenCount: gencount,
	}, nil
}

// Pull returns the zone's incremental record set after lastKnownGenCount.
func (s *syncService) Pull(ctx context.Context, userID int64, zone string, lastKnownGenCount int64) (models.PullResponse, error) {
	log := logger.FromContext(ctx)

	if zone == "" || lastKnownGenCount < 0 {
		return models.PullResponse{}, ErrInvalidDataProvided
	}

	records, err := s.syncRepository.LoadRecordsSince(ctx, userID, zone, lastKnownGenCount)
	if err != nil {
		log.Err(err).
			Str("func", "syncService.Pull").
			Str("zone", zone).
			Int64("since", lastKnownGenCount).
			Msg("failed to load records")
		return models.PullResponse{}, fmt.Errorf("error loading records since %d: %w", lastKnownGenCount, err)
	}

	gencount, err := s.syncRepository.LoadCurrentGenCount(ctx, userID, zone)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("error loading zone gencount: %w", err)
	}

	return models.PullResponse{Zone: zone, GenCount: gencount, Records: records}, nil
}

// Manifest summarizes the zone's live item set for divergence checks.
func (s *syncService) Manifest(ctx context.Context, userID int64, zone string) (models.SyncManifest, error) {
	if zone == "" {
		return models.SyncManifest{}, ErrInvalidDataProvided
	}

	leafIDs, err := s.syncRepository.LoadLeafIDs(ctx, userID, zone)
	if err != nil {
		return models.SyncManifest{}, fmt.Errorf("error loading leaf ids: %w", err)
	}

	gencount, err := s.syncRepository.LoadCurrentGenCount(ctx, userID, zone)
	if err != nil {
		return models.SyncManifest{}, fmt.Errorf("error loading zone gencount: %w", err)
	}

	return BuildManifest(zone, leafIDs, gencount), nil
}

// IncrementGenCount advances the zone's logical clock.
func (s *syncService) IncrementGenCount(ctx context.Context, userID int64, zone string) (int64, error) {
	if zone == "" {
		return 0, ErrInvalidDataProvided
	}
	gencount, err := s.syncRepository.AllocateGenCount(ctx, userID, zone)
	if err != nil {
		return 0, fmt.Errorf("error allocating gencount: %w", err)
	}
	return gencount, nil
}

// CreateSyncOperation binds the next gencount to an item mutation.
func (s *syncService) CreateSyncOperation(ctx context.Context, userID int64, zone, itemUUID string, prevGenCount int64) (models.SyncOperation, error) {
	if zone == "" || itemUUID == "" {
		return models.SyncOperation{}, ErrInvalidDataProvided
	}

	gencount, err := s.syncRepository.AllocateGenCount(ctx, userID, zone)
	if err != nil {
		return models.SyncOperation{}, fmt.Errorf("error allocating gencount: %w", err)
	}

	return models.SyncOperation{
		ItemUUID:         itemUUID,
		Zone:             zone,
		GenCount:         gencount,
		PreviousGenCount: prevGenCount,
		Tombstone:        false,
	}, nil
}

// MarkTombstone writes a deletion marker for an item. The tombstone keeps the
// item's key-hierarchy position but carries no ciphertext, and it propagates
// to other devices through the ordinary pull path.
func (s *syncService) MarkTombstone(ctx context.Context, userID int64, zone, itemUUID string) (models.SyncOperation, error) {
	log := logger.FromContext(ctx)

	if zone == "" || itemUUID == "" {
		return models.SyncOperation{}, ErrInvalidDataProvided
	}

	tombstone := models.SyncRecord{
		UserID:    userID,
		Zone:      zone,
		ItemUUID:  itemUUID,
		Tombstone: true,
	}
	var prevGenCount int64

	stored, err := s.syncRepository.LoadSyncRecord(ctx, userID, zone, itemUUID)
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		// Deleting an item this server never saw still writes a tombstone,
		// so the deletion reaches devices that do hold the item.
	case err != nil:
		return models.SyncOperation{}, fmt.Errorf("error loading stored record: %w", err)
	default:
		prevGenCount = stored.GenCount
		tombstone.ParentKeyUUID = stored.ParentKeyUUID
		tombstone.EncVersion = stored.EncVersion
		tombstone.ContextID = stored.ContextID
	}

	tombstone.Hash = s.recordHash(tombstone)

	gencount, err := s.syncRepository.AllocateAndPersist(ctx, tombstone)
	if err != nil {
		log.Err(err).
			Str("func", "syncService.MarkTombstone").
			Str("zone", zone).
			Str("item_uuid", itemUUID).
			Msg("failed to persist tombstone")
		return models.SyncOperation{}, fmt.Errorf("error persisting tombstone: %w", err)
	}

	s.emit(models.EventCredentialDeleted, userID, zone, gencount)

	return models.SyncOperation{
		ItemUUID:         itemUUID,
		Zone:             zone,
		GenCount:         gencount,
		PreviousGenCount: prevGenCount,
		Tombstone:        true,
	}, nil
}

// Events exposes the notification stream consumed by the dispatcher worker.
func (s *syncService) Events() <-chan models.SyncEvent {
	return s.events
}

// emit publishes an event without ever blocking a push. Dropped events are
// harmless: devices reconcile via pull on their next connection anyway.
func (s *syncService) emit(eventType models.SyncEventType, userID int64, zone string, gencount int64) {
	event := models.SyncEvent{
		Type:      eventType,
		UserID:    userID,
		Zone:      zone,
		GenCount:  gencount,
		Timestamp: time.Now(),
	}

	select {
	case s.events <- event:
	default:
		s.logger.Warn().
			Str("func", "syncService.emit").
			Str("zone", zone).
			Int64("gencount", gencount).
			Msg("event buffer full, notification dropped")
	}
}

// recordHash fingerprints the fields a device actually syncs on. UpdatedAt
// and GenCount are excluded: the hash identifies content, not history.
func (s *syncService) recordHash(record models.SyncRecord) string {
	payload := make([]byte, 0, len(record.WrappedKey)+len(record.EncItem)+64)
	payload = append(payload, record.ItemUUID...)
	payload = append(payload, '\n')
	payload = append(payload, record.ParentKeyUUID...)
	payload = append(payload, '\n')
	payload = append(payload, strconv.Itoa(record.EncVersion)...)
	payload = append(payload, '\n')
	payload = append(payload, strconv.FormatBool(record.Tombstone)...)
	payload = append(payload, '\n')
	payload = append(payload, record.WrappedKey...)
	payload = append(payload, '\n')
	payload = append(payload, record.EncItem...)

	return s.hasher.HashHex(payload)
}
