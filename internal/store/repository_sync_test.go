// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestSyncRepo(t *testing.T) (*syncRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &syncRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func syncRecordColumns() []string {
	return []string{
		"user_id", "zone", "item_uuid", "parent_key_uuid", "wrapped_key", "enc_item",
		"enc_version", "context_id", "gencount", "tombstone", "hash", "updated_at",
	}
}

func TestAllocateGenCount_FirstAllocationIsOne(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO zone_counters").
		WithArgs(int64(1), "passwords").
		WillReturnRows(sqlmock.NewRows([]string{"gencount"}).AddRow(1))

	gencount, err := repo.AllocateGenCount(context.Background(), 1, "passwords")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gencount != 1 {
		t.Errorf("expected gencount=1, got %d", gencount)
	}
}

func TestAllocateGenCount_QueryError(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO zone_counters").
		WithArgs(int64(1), "passwords").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.AllocateGenCount(context.Background(), 1, "passwords")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestAllocateGenCount_RetriesSerializationFailure(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	// Two pushes contending on the zone_counters row: the first attempt is
	// rolled back with a serialization failure, the retry allocates.
	mock.ExpectQuery("INSERT INTO zone_counters").
		WithArgs(int64(1), "passwords").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectQuery("INSERT INTO zone_counters").
		WithArgs(int64(1), "passwords").
		WillReturnRows(sqlmock.NewRows([]string{"gencount"}).AddRow(4))

	gencount, err := repo.AllocateGenCount(context.Background(), 1, "passwords")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gencount != 4 {
		t.Errorf("expected gencount=4 after retry, got %d", gencount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAllocateGenCount_GivesUpAfterRepeatedTransientFailures(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	for i := 0; i < 3; i++ {
		mock.ExpectQuery("INSERT INTO zone_counters").
			WithArgs(int64(1), "passwords").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	}

	_, err := repo.AllocateGenCount(context.Background(), 1, "passwords")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoadCurrentGenCount_ZeroForUnknownZone(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT gencount").
		WithArgs(int64(1), "notes").
		WillReturnError(sql.ErrNoRows)

	gencount, err := repo.LoadCurrentGenCount(context.Background(), 1, "notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gencount != 0 {
		t.Errorf("expected gencount=0 for unwritten zone, got %d", gencount)
	}
}

func TestAllocateAndPersist_ReturnsAllocatedGenCount(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	record := models.SyncRecord{
		UserID:        1,
		Zone:          "passwords",
		ItemUUID:      "0198c5f2-0000-7000-8000-000000000001",
		ParentKeyUUID: "0198c5f2-0000-7000-8000-0000000000aa",
		WrappedKey:    []byte("wrapped"),
		EncItem:       []byte("ciphertext"),
		EncVersion:    1,
		ContextID:     "vault",
		Tombstone:     false,
		Hash:          "abcdef",
	}

	mock.ExpectQuery("WITH counter AS").
		WithArgs(
			record.UserID, record.Zone, record.ItemUUID, record.ParentKeyUUID,
			record.WrappedKey, record.EncItem, record.EncVersion, record.ContextID,
			record.Tombstone, record.Hash,
		).
		WillReturnRows(sqlmock.NewRows([]string{"gencount"}).AddRow(7))

	gencount, err := repo.AllocateAndPersist(context.Background(), record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gencount != 7 {
		t.Errorf("expected gencount=7, got %d", gencount)
	}
}

func TestAllocateAndPersist_GuardRejectsLosingWrite(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	// No row returned: the stored record already carries a greater gencount.
	mock.ExpectQuery("WITH counter AS").
		WillReturnRows(sqlmock.NewRows([]string{"gencount"}))

	_, err := repo.AllocateAndPersist(context.Background(), models.SyncRecord{
		UserID:   1,
		Zone:     "passwords",
		ItemUUID: "0198c5f2-0000-7000-8000-000000000001",
	})
	if !errors.Is(err, ErrRecordNotPersisted) {
		t.Fatalf("expected ErrRecordNotPersisted, got %v", err)
	}
}

func TestAllocateAndPersist_RetriesDeadlock(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	mock.ExpectQuery("WITH counter AS").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	mock.ExpectQuery("WITH counter AS").
		WillReturnRows(sqlmock.NewRows([]string{"gencount"}).AddRow(9))

	gencount, err := repo.AllocateAndPersist(context.Background(), models.SyncRecord{
		UserID:   1,
		Zone:     "passwords",
		ItemUUID: "0198c5f2-0000-7000-8000-000000000001",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gencount != 9 {
		t.Errorf("expected gencount=9 after retry, got %d", gencount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAllocateAndPersist_ConstraintViolationIsNotRetried(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	// A single expectation: a constraint violation must surface immediately.
	mock.ExpectQuery("WITH counter AS").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	_, err := repo.AllocateAndPersist(context.Background(), models.SyncRecord{
		UserID:   404,
		Zone:     "passwords",
		ItemUUID: "0198c5f2-0000-7000-8000-000000000001",
	})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoadSyncRecord_Success(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(syncRecordColumns()).
		AddRow(int64(1), "passwords", "item-1", "key-1", []byte("wk"), []byte("ct"),
			1, "vault", int64(3), false, "hash", now)

	mock.ExpectQuery("SELECT (.+) FROM sync_records").
		WithArgs(int64(1), "passwords", "item-1").
		WillReturnRows(rows)

	record, err := repo.LoadSyncRecord(context.Background(), 1, "passwords", "item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.GenCount != 3 {
		t.Errorf("expected GenCount=3, got %d", record.GenCount)
	}
	if record.Tombstone {
		t.Error("expected live record, got tombstone")
	}
}

func TestLoadSyncRecord_NotFound(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sync_records").
		WithArgs(int64(1), "passwords", "ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.LoadSyncRecord(context.Background(), 1, "passwords", "ghost")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLoadRecordsSince_IncludesTombstones(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(syncRecordColumns()).
		AddRow(int64(1), "passwords", "item-1", "", []byte("wk"), []byte("ct"),
			1, "", int64(4), false, "h1", now).
		AddRow(int64(1), "passwords", "item-2", "", []byte(nil), []byte(nil),
			1, "", int64(5), true, "h2", now)

	mock.ExpectQuery("SELECT (.+) FROM sync_records").
		WithArgs(int64(1), "passwords", int64(3)).
		WillReturnRows(rows)

	records, err := repo.LoadRecordsSince(context.Background(), 1, "passwords", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[1].Tombstone {
		t.Error("expected second record to be a tombstone")
	}
	if records[0].GenCount >= records[1].GenCount {
		t.Error("expected records ordered by gencount ascending")
	}
}

func TestLoadLeafIDs_Success(t *testing.T) {
	repo, mock, db := newTestSyncRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"item_uuid"}).
		AddRow("item-a").
		AddRow("item-b")

	mock.ExpectQuery("SELECT item_uuid FROM sync_records").
		WithArgs(int64(1), "passwords", false).
		WillReturnRows(rows)

	leafIDs, err := repo.LoadLeafIDs(context.Background(), 1, "passwords")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leafIDs) != 2 {
		t.Fatalf("expected 2 leaf ids, got %d", len(leafIDs))
	}
	if leafIDs[0] != "item-a" || leafIDs[1] != "item-b" {
		t.Errorf("unexpected leaf ids: %v", leafIDs)
	}
}
