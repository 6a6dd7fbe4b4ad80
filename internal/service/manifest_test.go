// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/sha256"
	"testing"

	"github.com/MKhiriev/keychain-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────────────────────
// ManifestDigest
// ─────────────────────────────────────────────────────────────────────────────

func TestManifestDigest_OrderIndependent(t *testing.T) {
	a := ManifestDigest([]string{"item-1", "item-2", "item-3"})
	b := ManifestDigest([]string{"item-3", "item-1", "item-2"})

	assert.Equal(t, a, b, "digest must be a pure function of the leaf set")
}

func TestManifestDigest_SensitiveToMembership(t *testing.T) {
	base := ManifestDigest([]string{"item-1", "item-2"})

	tests := []struct {
		name  string
		leafs []string
	}{
		{name: "added leaf", leafs: []string{"item-1", "item-2", "item-3"}},
		{name: "removed leaf", leafs: []string{"item-1"}},
		{name: "replaced leaf", leafs: []string{"item-1", "item-9"}},
		{name: "empty set", leafs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, ManifestDigest(tt.leafs))
		})
	}
}

func TestManifestDigest_EmptySetIsWellDefined(t *testing.T) {
	a := ManifestDigest(nil)
	b := ManifestDigest([]string{})

	assert.Equal(t, a, b)
	assert.Len(t, a, sha256.Size)
}

func TestManifestDigest_DoesNotMutateInput(t *testing.T) {
	leafs := []string{"z", "a", "m"}
	_ = ManifestDigest(leafs)

	assert.Equal(t, []string{"z", "a", "m"}, leafs)
}

// ─────────────────────────────────────────────────────────────────────────────
// BuildManifest / ValidateManifest
// ─────────────────────────────────────────────────────────────────────────────

func TestBuildManifest_SortsLeafsAndPinsVersion(t *testing.T) {
	manifest := BuildManifest("passwords", []string{"c", "a", "b"}, 7)

	assert.Equal(t, "passwords", manifest.Zone)
	assert.Equal(t, int64(7), manifest.GenCount)
	assert.Equal(t, []string{"a", "b", "c"}, manifest.LeafIDs)
	assert.Equal(t, ManifestDigestVersion, manifest.DigestVersion)
	require.NoError(t, ValidateManifest(manifest))
}

func TestValidateManifest_Failures(t *testing.T) {
	valid := BuildManifest("passwords", []string{"a", "b"}, 3)

	tamperedDigest := valid
	tamperedDigest.Digest = ManifestDigest([]string{"a", "x"})

	tamperedLeafs := valid
	tamperedLeafs.LeafIDs = []string{"a"}

	wrongVersion := valid
	wrongVersion.DigestVersion = 99

	tests := []struct {
		name     string
		manifest models.SyncManifest
	}{
		{name: "digest does not match leaf set", manifest: tamperedDigest},
		{name: "leaf set does not match digest", manifest: tamperedLeafs},
		{name: "unsupported digest version", manifest: wrongVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateManifest(tt.manifest), ErrInvalidManifest)
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// HasDiverged / ComputeManifestDiff
// ─────────────────────────────────────────────────────────────────────────────

func TestHasDiverged(t *testing.T) {
	a := BuildManifest("passwords", []string{"item-1", "item-2"}, 5)
	b := BuildManifest("passwords", []string{"item-2", "item-1"}, 9)
	c := BuildManifest("passwords", []string{"item-1"}, 5)

	assert.False(t, HasDiverged(a, b), "equal sets at different gencounts have not diverged")
	assert.True(t, HasDiverged(a, c))
}

func TestComputeManifestDiff(t *testing.T) {
	local := BuildManifest("passwords", []string{"a", "b", "c"}, 10)
	remote := BuildManifest("passwords", []string{"b", "c", "d", "e"}, 12)

	diff, err := ComputeManifestDiff(local, remote)
	require.NoError(t, err)

	assert.Equal(t, []string{"d", "e"}, diff.Added)
	assert.Equal(t, []string{"a"}, diff.Removed)
}

func TestComputeManifestDiff_EqualSets(t *testing.T) {
	local := BuildManifest("passwords", []string{"a", "b"}, 4)
	remote := BuildManifest("passwords", []string{"b", "a"}, 8)

	diff, err := ComputeManifestDiff(local, remote)
	require.NoError(t, err)

	assert.Empty(t, diff.Added)
	assert.Empty(t, diff.Removed)
}

func TestComputeManifestDiff_RejectsInvalidManifest(t *testing.T) {
	local := BuildManifest("passwords", []string{"a"}, 1)
	remote := BuildManifest("passwords", []string{"b"}, 1)
	remote.Digest = []byte("bogus")

	_, err := ComputeManifestDiff(local, remote)
	assert.ErrorIs(t, err, ErrInvalidManifest)
}
