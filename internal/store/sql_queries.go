// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, auth_hash, kdf_salt)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, auth_hash, kdf_salt, created_at;`

	findUserByLogin = `SELECT user_id, login, auth_hash, kdf_salt, created_at
    FROM users
    WHERE login = $1;`

	// allocateGenCount advances the per-(user, zone) logical clock. The
	// upsert takes a row lock on the counter, so concurrent pushes to the
	// same zone serialize here and always observe distinct values.
	allocateGenCount = `INSERT INTO zone_counters (user_id, zone, gencount)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, zone)
		DO UPDATE SET gencount = zone_counters.gencount + 1
		RETURNING gencount;`

	getCurrentGenCount = `SELECT gencount
		FROM zone_counters
		WHERE user_id = $1 AND zone = $2;`

	// allocateAndPersistRecord performs gencount allocation and the record
	// upsert in one statement so the pair is atomic even outside an explicit
	// transaction. The guard on the conflict branch keeps gencounts
	// monotonic per item: an older in-flight write can never overwrite a
	// newer stored version.
	allocateAndPersistRecord = `WITH counter AS (
			INSERT INTO zone_counters (user_id, zone, gencount)
			VALUES ($1, $2, 1)
			ON CONFLICT (user_id, zone)
			DO UPDATE SET gencount = zone_counters.gencount + 1
			RETURNING gencount
		)
		INSERT INTO sync_records (
			user_id,
			zone,
			item_uuid,
			parent_key_uuid,
			wrapped_key,
			enc_item,
			enc_version,
			context_id,
			gencount,
			tombstone,
			hash,
			updated_at
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, counter.gencount, $9, $10, NOW()
		FROM counter
		ON CONFLICT (user_id, zone, item_uuid)
		DO UPDATE SET
			parent_key_uuid = EXCLUDED.parent_key_uuid,
			wrapped_key     = EXCLUDED.wrapped_key,
			enc_item        = EXCLUDED.enc_item,
			enc_version     = EXCLUDED.enc_version,
			context_id      = EXCLUDED.context_id,
			gencount        = EXCLUDED.gencount,
			tombstone       = EXCLUDED.tombstone,
			hash            = EXCLUDED.hash,
			updated_at      = NOW()
		WHERE sync_records.gencount < EXCLUDED.gencount
		RETURNING gencount;`

	getSyncRecord = `SELECT user_id, zone, item_uuid, parent_key_uuid, wrapped_key, enc_item,
			enc_version, context_id, gencount, tombstone, hash, updated_at
		FROM sync_records
		WHERE user_id = $1 AND zone = $2 AND item_uuid = $3;`

	loadTrustedPeers = `SELECT user_id, peer_id, public_key, last_seen, is_current_device, trust_level
		FROM trusted_peers
		WHERE user_id = $1
		ORDER BY peer_id;`

	upsertTrustedPeer = `INSERT INTO trusted_peers (user_id, peer_id, public_key, last_seen, is_current_device, trust_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, peer_id)
		DO UPDATE SET
			public_key        = EXCLUDED.public_key,
			last_seen         = EXCLUDED.last_seen,
			is_current_device = EXCLUDED.is_current_device,
			trust_level       = EXCLUDED.trust_level;`

	deleteTrustedPeer = `DELETE FROM trusted_peers
		WHERE user_id = $1 AND peer_id = $2;`

	touchTrustedPeer = `UPDATE trusted_peers
		SET last_seen = NOW()
		WHERE user_id = $1 AND peer_id = $2;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildRecordsSinceQuery builds the incremental pull query: every record in
// the zone with gencount strictly greater than sinceGenCount, tombstones
// included, in gencount order.
func buildRecordsSinceQuery(userID int64, zone string, sinceGenCount int64) (string, []any, error) {
	query, args, err := psql.
		Select(
			"user_id", "zone", "item_uuid", "parent_key_uuid", "wrapped_key", "enc_item",
			"enc_version", "context_id", "gencount", "tombstone", "hash", "updated_at",
		).
		From("sync_records").
		Where(sq.Eq{"user_id": userID, "zone": zone}).
		Where(sq.Gt{"gencount": sinceGenCount}).
		OrderBy("gencount ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildIdlePeersQuery builds the cross-account idle-peer scan used by the
// peer sweeper. Current devices never count as idle.
func buildIdlePeersQuery(idleBefore time.Time) (string, []any, error) {
	query, args, err := psql.
		Select("user_id", "peer_id", "public_key", "last_seen", "is_current_device", "trust_level").
		From("trusted_peers").
		Where(sq.Lt{"last_seen": idleBefore}).
		Where(sq.Eq{"is_current_device": false}).
		OrderBy("user_id ASC", "peer_id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildLeafIDsQuery builds the live leaf-set query used for manifest
// computation: item UUIDs of non-tombstoned records, sorted so that digests
// are computed over a canonical ordering.
func buildLeafIDsQuery(userID int64, zone string) (string, []any, error) {
	query, args, err := psql.
		Select("item_uuid").
		From("sync_records").
		Where(sq.Eq{"user_id": userID, "zone": zone}).
		Where(sq.Eq{"tombstone": false}).
		OrderBy("item_uuid ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
