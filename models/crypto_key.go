// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyClass partitions key records by their cryptographic role.
type KeyClass string

const (
	KeyClassSymmetric KeyClass = "symmetric"
	KeyClassPublic    KeyClass = "public"
	KeyClassPrivate   KeyClass = "private"
)

// KeyType names the concrete algorithm a key record belongs to.
type KeyType string

const (
	KeyTypeAESGCM256 KeyType = "aes-gcm-256"
	KeyTypeEd25519   KeyType = "ed25519"
	KeyTypeX25519    KeyType = "x25519"
)

// KeyUsage is a bitmask of the operations a key record is allowed to perform.
type KeyUsage uint8

const (
	KeyUsageEncrypt KeyUsage = 1 << iota
	KeyUsageDecrypt
	KeyUsageWrap
	KeyUsageUnwrap
	KeyUsageSign
	KeyUsageVerify
	KeyUsageDerive
)

// Can reports whether the mask permits every operation in usage.
func (u KeyUsage) Can(usage KeyUsage) bool {
	return u&usage == usage
}

// CryptoKey is a key-hierarchy node: an encrypted key blob together with the
// identity, classification and capability data needed to place it in a zone.
//
// The key material in EncryptedKey is opaque to the server — it is wrapped on
// the client under a key the server never sees. A CryptoKey is mutated only by
// rotation (which allocates a new GenCount) or by tombstoning; it is never
// physically deleted while another record references it.
type CryptoKey struct {
	// ItemUUID identifies the key record within its zone.
	ItemUUID string `json:"item_uuid"`

	// Zone is the sync namespace (vault or sharing context) the key lives in.
	Zone string `json:"zone"`

	// KeyClass is the cryptographic role of the record (symmetric, public, private).
	KeyClass KeyClass `json:"key_class"`

	// KeyType is the concrete algorithm of the key material.
	KeyType KeyType `json:"key_type"`

	// EncryptedKey is the wrapped key material. Opaque ciphertext.
	EncryptedKey []byte `json:"encrypted_key"`

	// Usage is the capability mask granted to this key.
	Usage KeyUsage `json:"usage"`

	// AccessGroup labels which client components may use the key.
	AccessGroup string `json:"access_group"`

	// GenCount is the zone generation at which this version was written.
	GenCount int64 `json:"gencount"`

	// Tombstone marks the key as deleted without removing the row.
	Tombstone bool `json:"tombstone"`
}
