// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncEventType classifies what changed in a zone.
type SyncEventType string

const (
	EventCredentialChanged SyncEventType = "credential_changed"
	EventCredentialDeleted SyncEventType = "credential_deleted"
	EventNewGeneration     SyncEventType = "new_generation"
)

// SyncEvent is the compact notification fanned out to a user's live
// connections after an accepted push. Receivers react by pulling; the event
// itself carries no payload.
type SyncEvent struct {
	Type      SyncEventType `json:"type"`
	UserID    int64         `json:"user_id"`
	Zone      string        `json:"zone"`
	GenCount  int64         `json:"gencount"`
	Timestamp time.Time     `json:"timestamp"`
}
