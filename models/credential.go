// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialMetadata is the non-secret envelope of a stored credential:
// everything needed to find and display an entry without touching the
// encrypted payload.
//
// Invariant: while a credential is live (not tombstoned), PasswordKeyUUID
// must reference a live CryptoKey in the same zone.
type CredentialMetadata struct {
	Server   string `json:"server"`
	Account  string `json:"account"`
	Protocol string `json:"protocol"`
	Port     int    `json:"port"`
	Path     string `json:"path,omitempty"`
	Label    string `json:"label,omitempty"`

	// PasswordKeyUUID references the CryptoKey protecting the secret payload.
	PasswordKeyUUID string `json:"password_key_uuid"`

	// MetadataKeyUUID optionally references a second key protecting
	// searchable metadata. Empty when metadata is stored in the clear.
	MetadataKeyUUID string `json:"metadata_key_uuid,omitempty"`
}
