// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService is the layered crypto engine of the zero-knowledge scheme.
// It knows nothing about the network, the database, or users; its only job
// is deriving and protecting keys and payloads.
//
// The envelope scheme is two-tier:
//
//	masterKey  = DeriveMasterKey(passphrase, salt)       (long-lived)
//	contentKey = GenerateContentKey()                    (per item, random)
//	wrappedKey = WrapKey(contentKey, masterKey)          (stored)
//	encItem    = EncryptItem(plaintext, contentKey)      (stored)
//
// Rotating the master key re-wraps content keys only; bulk item data is
// never re-encrypted.
//
// Every operation is pure and stateless beyond its explicit key inputs, so
// implementations are safe for unrestricted concurrent use.
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes from the OS CSPRNG. The salt is
	// not a secret; it is stored server-side in the clear.
	GenerateSalt() ([]byte, error)

	// GenerateContentKey returns a fresh random 32-byte content key.
	GenerateContentKey() ([]byte, error)

	// DeriveMasterKey derives a 256-bit master key from the passphrase and
	// salt. Deterministic for identical inputs. The salt must be at least
	// 16 bytes, caller-supplied or freshly random.
	DeriveMasterKey(passphrase string, salt []byte) ([]byte, error)

	// WrapKey AEAD-encrypts a content key under the master key.
	// The blob layout is nonce ‖ ciphertext.
	WrapKey(contentKey, masterKey []byte) ([]byte, error)

	// UnwrapKey reverses WrapKey. Fails with [ErrAuthenticationFailed] if
	// the AEAD tag does not verify — this is also how a wrong passphrase
	// is detected.
	UnwrapKey(wrappedKey, masterKey []byte) ([]byte, error)

	// EncryptItem AEAD-encrypts plaintext under a content key with a fresh
	// random nonce prepended to the output. Nonce reuse under one key is
	// prevented by generation, never by inspection.
	EncryptItem(plaintext, contentKey []byte) ([]byte, error)

	// DecryptItem reverses EncryptItem. Fails with [ErrAuthenticationFailed]
	// on any authentication failure.
	DecryptItem(blob, contentKey []byte) ([]byte, error)

	// EncryptCredential runs the full envelope: generates a fresh content
	// key, wraps it under the master key, and encrypts the payload under
	// the content key.
	EncryptCredential(plaintext, masterKey []byte) (wrappedKey, encItem []byte, err error)

	// DecryptCredential reverses EncryptCredential.
	DecryptCredential(wrappedKey, encItem, masterKey []byte) ([]byte, error)

	// DeriveSubKey derives a context-scoped 32-byte subkey from the master
	// key. The same context always yields the same subkey; different
	// contexts are cryptographically independent.
	DeriveSubKey(masterKey []byte, context string) ([]byte, error)
}
