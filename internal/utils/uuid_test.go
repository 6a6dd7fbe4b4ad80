// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesValidUUIDs(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := g.Generate()

		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("generated id %q is not a valid UUID: %v", id, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("generated duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestUUIDGenerator_TimeOrdered(t *testing.T) {
	g := NewUUIDGenerator()

	prev := g.Generate()
	for i := 0; i < 50; i++ {
		next := g.Generate()
		// UUIDv7 sorts lexicographically by creation time.
		if next <= prev {
			t.Fatalf("expected monotonic ids, got %q after %q", next, prev)
		}
		prev = next
	}
}
