// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// EncryptionVersion pins the wire format produced by this package:
// PBKDF2-SHA256 key derivation, AES-256-GCM with a 12-byte prepended nonce,
// HKDF-SHA256 subkeys. Records carry the value in their EncVersion field so
// mixed-version devices detect incompatibility instead of failing to decrypt
// silently. Bump it whenever any of these choices change.
const EncryptionVersion = 1

const (
	saltSize = 16
	keySize  = 32 // 256 bits

	// pbkdf2Iterations is the PBKDF2-SHA256 work factor (OWASP 2023 floor
	// for SHA-256).
	pbkdf2Iterations = 600_000
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// iterations is the PBKDF2 work factor. Stored in the struct so it can
	// be lowered for tests and tuned per deployment target.
	iterations int
}

// NewKeyChainService constructs a [KeyChainService] with the pinned
// [EncryptionVersion] 1 parameters.
func NewKeyChainService() KeyChainService {
	return &keyChainService{iterations: pbkdf2Iterations}
}

// newKeyChainServiceWithIterations exists for tests: a full-strength KDF run
// per test case would dominate the suite's runtime.
func newKeyChainServiceWithIterations(iterations int) KeyChainService {
	return &keyChainService{iterations: iterations}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateContentKey implements [KeyChainService]. It reads 32 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateContentKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveMasterKey implements [KeyChainService]. It derives a 256-bit master
// key from passphrase and salt using PBKDF2-SHA256 with the work factor
// stored in the receiver. The result exists only in client memory and is
// never transmitted to the server.
func (k *keyChainService) DeriveMasterKey(passphrase string, salt []byte) ([]byte, error) {
	if len(salt) < saltSize {
		return nil, ErrInvalidSalt
	}

	return pbkdf2.Key([]byte(passphrase), salt, k.iterations, keySize, sha256.New), nil
}

// WrapKey implements [KeyChainService]. It encrypts contentKey under
// masterKey using AES-256-GCM. A random 12-byte nonce is prepended to the
// ciphertext so that the unwrap side can locate it: blob = nonce ‖ ciphertext.
func (k *keyChainService) WrapKey(contentKey, masterKey []byte) ([]byte, error) {
	return k.seal(contentKey, masterKey)
}

// UnwrapKey implements [KeyChainService]. It unwraps the blob produced by
// [keyChainService.WrapKey]. An authentication failure here almost always
// means the user entered the wrong passphrase, producing a wrong master key.
func (k *keyChainService) UnwrapKey(wrappedKey, masterKey []byte) ([]byte, error) {
	return k.open(wrappedKey, masterKey)
}

// EncryptItem implements [KeyChainService].
func (k *keyChainService) EncryptItem(plaintext, contentKey []byte) ([]byte, error) {
	return k.seal(plaintext, contentKey)
}

// DecryptItem implements [KeyChainService].
func (k *keyChainService) DecryptItem(blob, contentKey []byte) ([]byte, error) {
	return k.open(blob, contentKey)
}

// EncryptCredential implements [KeyChainService]. It generates a fresh
// random content key, wraps it under masterKey, and encrypts plaintext under
// the content key. This is the two-tier envelope: rotating the master key
// re-wraps content keys without touching bulk item data.
func (k *keyChainService) EncryptCredential(plaintext, masterKey []byte) ([]byte, []byte, error) {
	contentKey, err := k.GenerateContentKey()
	if err != nil {
		return nil, nil, err
	}

	wrappedKey, err := k.WrapKey(contentKey, masterKey)
	if err != nil {
		return nil, nil, err
	}

	encItem, err := k.EncryptItem(plaintext, contentKey)
	if err != nil {
		return nil, nil, err
	}

	return wrappedKey, encItem, nil
}

// DecryptCredential implements [KeyChainService]. It unwraps the content key
// under masterKey, then decrypts the item under the content key.
func (k *keyChainService) DecryptCredential(wrappedKey, encItem, masterKey []byte) ([]byte, error) {
	contentKey, err := k.UnwrapKey(wrappedKey, masterKey)
	if err != nil {
		return nil, err
	}

	return k.DecryptItem(encItem, contentKey)
}

// DeriveSubKey implements [KeyChainService]. It derives a context-scoped
// 32-byte subkey from masterKey via HKDF-SHA256, using the context string as
// the HKDF info parameter. Identical contexts always yield identical output;
// distinct contexts yield cryptographically independent keys.
func (k *keyChainService) DeriveSubKey(masterKey []byte, context string) ([]byte, error) {
	if len(masterKey) != keySize {
		return nil, ErrInvalidKeySize
	}
	if context == "" {
		return nil, ErrEmptyContext
	}

	reader := hkdf.New(sha256.New, masterKey, nil, []byte(context))

	subKey := make([]byte, keySize)
	if _, err := io.ReadFull(reader, subKey); err != nil {
		return nil, err
	}
	return subKey, nil
}

// seal AEAD-encrypts plaintext under key with AES-256-GCM and prepends the
// freshly generated nonce: blob = nonce ‖ ciphertext.
func (k *keyChainService) seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := k.newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend the nonce so open can split it out without a side channel.
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// open reverses seal. Every failure mode past cipher construction — blob too
// short, wrong key, corrupted ciphertext — collapses into
// [ErrAuthenticationFailed] so that callers cannot distinguish them.
func (k *keyChainService) open(blob, key []byte) ([]byte, error) {
	gcm, err := k.newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrAuthenticationFailed
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

func (k *keyChainService) newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keySize {
		return nil, ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
