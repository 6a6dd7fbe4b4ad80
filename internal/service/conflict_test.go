// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/keychain-sync/models"
	"github.com/stretchr/testify/assert"
)

// rec is a shorthand constructor for SyncRecord used only in tests.
func rec(gencount int64, parentKeyUUID string) models.SyncRecord {
	return models.SyncRecord{
		ItemUUID:      "item-1",
		Zone:          "passwords",
		ParentKeyUUID: parentKeyUUID,
		GenCount:      gencount,
	}
}

// TestDetectConflict_DecisionMatrix covers every cell of the detection table:
// conflict iff gencount or key parent differ.
func TestDetectConflict_DecisionMatrix(t *testing.T) {
	tests := []struct {
		name   string
		local  models.SyncRecord
		remote models.SyncRecord
		want   bool
	}{
		{name: "same gencount, same parent", local: rec(3, "key-a"), remote: rec(3, "key-a"), want: false},
		{name: "different gencount", local: rec(3, "key-a"), remote: rec(5, "key-a"), want: true},
		{name: "different parent", local: rec(3, "key-a"), remote: rec(3, "key-b"), want: true},
		{name: "both differ", local: rec(3, "key-a"), remote: rec(7, "key-b"), want: true},
		{name: "empty parents match", local: rec(1, ""), remote: rec(1, ""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectConflict(tt.local, tt.remote))
			// Detection is symmetric.
			assert.Equal(t, tt.want, DetectConflict(tt.remote, tt.local))
		})
	}
}

func TestLastWriterWins_GreaterGenCountWins(t *testing.T) {
	resolver := NewLastWriterWins()

	local := rec(3, "key-a")
	remote := rec(7, "key-a")

	assert.Equal(t, remote, resolver.Resolve(local, remote))
	assert.Equal(t, remote, resolver.Resolve(remote, local), "the greater generation wins from either side")
}

func TestLastWriterWins_TieReturnsLocal(t *testing.T) {
	resolver := NewLastWriterWins()

	local := rec(4, "key-a")
	remote := rec(4, "key-b")

	assert.Equal(t, local, resolver.Resolve(local, remote))
	assert.Equal(t, remote, resolver.Resolve(remote, local), "each side keeps its own version on a tie")
}

func TestLastWriterWins_Deterministic(t *testing.T) {
	resolver := NewLastWriterWins()

	local := rec(2, "key-a")
	remote := rec(9, "key-b")

	first := resolver.Resolve(local, remote)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, resolver.Resolve(local, remote))
	}
}
