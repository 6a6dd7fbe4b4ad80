// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"crypto/sha256"
	"sort"
	"strings"

	"github.com/MKhiriev/keychain-sync/models"
)

// ManifestDigestVersion pins the digest construction. Bump on any change to
// ManifestDigest so mixed-version devices detect incompatibility instead of
// reporting phantom divergence.
const ManifestDigestVersion = 1

// ManifestDigest computes a SHA-256 digest over the sorted, newline-joined
// leaf IDs. The digest is a pure function of the leaf set: input order never
// matters, and the empty set has a well-defined digest.
func ManifestDigest(leafIDs []string) []byte {
	sorted := make([]string, len(leafIDs))
	copy(sorted, leafIDs)
	sort.Strings(sorted)

	sum := sha256.Sum256([]byte(strings.Join(sorted, "\n")))
	return sum[:]
}

// BuildManifest assembles a manifest for a zone snapshot. LeafIDs are stored
// sorted so two manifests over equal sets are byte-for-byte comparable.
func BuildManifest(zone string, leafIDs []string, gencount int64) models.SyncManifest {
	sorted := make([]string, len(leafIDs))
	copy(sorted, leafIDs)
	sort.Strings(sorted)

	return models.SyncManifest{
		Zone:          zone,
		GenCount:      gencount,
		Digest:        ManifestDigest(sorted),
		LeafIDs:       sorted,
		DigestVersion: ManifestDigestVersion,
	}
}

// ValidateManifest checks a manifest's internal consistency: supported digest
// version and a digest that matches its own leaf set. Anything else is
// [ErrInvalidManifest].
func ValidateManifest(manifest models.SyncManifest) error {
	if manifest.DigestVersion != ManifestDigestVersion {
		return ErrInvalidManifest
	}
	if !bytes.Equal(manifest.Digest, ManifestDigest(manifest.LeafIDs)) {
		return ErrInvalidManifest
	}
	return nil
}

// HasDiverged reports whether two manifests describe different leaf sets.
// Equal digests mean equal sets; gencounts deliberately play no part here,
// because two devices can reach the same content at different generations.
func HasDiverged(a, b models.SyncManifest) bool {
	return !bytes.Equal(a.Digest, b.Digest)
}

// ComputeManifestDiff returns the set difference between two validated
// manifests: Added lists leaves present remotely but not locally, Removed
// lists leaves present locally but not remotely.
func ComputeManifestDiff(local, remote models.SyncManifest) (models.ManifestDiff, error) {
	if err := ValidateManifest(local); err != nil {
		return models.ManifestDiff{}, err
	}
	if err := ValidateManifest(remote); err != nil {
		return models.ManifestDiff{}, err
	}

	localSet := make(map[string]struct{}, len(local.LeafIDs))
	for _, id := range local.LeafIDs {
		localSet[id] = struct{}{}
	}
	remoteSet := make(map[string]struct{}, len(remote.LeafIDs))
	for _, id := range remote.LeafIDs {
		remoteSet[id] = struct{}{}
	}

	diff := models.ManifestDiff{}
	for _, id := range remote.LeafIDs {
		if _, ok := localSet[id]; !ok {
			diff.Added = append(diff.Added, id)
		}
	}
	for _, id := range local.LeafIDs {
		if _, ok := remoteSet[id]; !ok {
			diff.Removed = append(diff.Removed, id)
		}
	}

	sort.Strings(diff.Added)
	sort.Strings(diff.Removed)

	return diff, nil
}
