// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecordOutcome is the per-record verdict of a push.
type RecordOutcome string

const (
	// OutcomeAccepted means the record was persisted as the new version.
	OutcomeAccepted RecordOutcome = "accepted"

	// OutcomeSuperseded means a stored version with a greater gencount won
	// deterministic conflict resolution; the pushed record was discarded.
	OutcomeSuperseded RecordOutcome = "superseded"

	// OutcomeStale means the record's PreviousGenCount is ahead of the
	// zone counter; the caller must re-pull and retry.
	OutcomeStale RecordOutcome = "stale"
)

// PushRequest carries a batch of encrypted records for one zone.
type PushRequest struct {
	Zone    string       `json:"zone"`
	Records []SyncRecord `json:"records"`
}

// PushResult is the outcome for a single pushed record.
type PushResult struct {
	ItemUUID string        `json:"item_uuid"`
	Outcome  RecordOutcome `json:"outcome"`

	// GenCount is the gencount now stored for the item — the allocated one
	// for accepted records, the surviving one for superseded records.
	GenCount int64 `json:"gencount"`
}

// PushResponse reports per-record outcomes plus the zone's new high-water mark.
type PushResponse struct {
	Zone     string       `json:"zone"`
	GenCount int64        `json:"gencount"`
	Results  []PushResult `json:"results"`
}

// PullRequest asks for everything written after LastKnownGenCount.
type PullRequest struct {
	Zone             string `json:"zone"`
	LastKnownGenCount int64 `json:"last_known_gencount"`
}

// PullResponse carries the incremental record set, tombstones included.
type PullResponse struct {
	Zone     string       `json:"zone"`
	GenCount int64        `json:"gencount"`
	Records  []SyncRecord `json:"records"`
}
