// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrAuthenticationFailed is returned whenever a decryption or unwrap
	// operation cannot authenticate its input: wrong key, tampered
	// ciphertext, or a blob too short to contain a nonce. The causes are
	// deliberately indistinguishable so the error carries no oracle.
	ErrAuthenticationFailed = errors.New("authentication failed: wrong key or corrupted data")

	// ErrInvalidSalt is returned by key derivation when the supplied salt is
	// shorter than the 16-byte minimum.
	ErrInvalidSalt = errors.New("salt must be at least 16 bytes")

	// ErrInvalidKeySize is returned when a key argument is not 32 bytes.
	ErrInvalidKeySize = errors.New("key must be 32 bytes")

	// ErrEmptyContext is returned by subkey derivation for an empty context
	// string; independent subkeys require distinct, explicit contexts.
	ErrEmptyContext = errors.New("derivation context must not be empty")
)
