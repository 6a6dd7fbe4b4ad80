// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trust

import "errors"

// Sentinel errors returned by the trust manager. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUntrustedPeer is returned when a signed message names a sender that
	// is not in the trusted-peer set. Verification fails closed: the
	// signature is not even checked for an untrusted sender.
	ErrUntrustedPeer = errors.New("peer is not trusted")

	// ErrCurrentDeviceRevocation is returned on an attempt to revoke trust
	// in the device the manager itself runs on.
	ErrCurrentDeviceRevocation = errors.New("cannot revoke trust in the current device")

	// ErrUnknownPeer is returned when an operation targets a peer id that is
	// not in the trusted set.
	ErrUnknownPeer = errors.New("unknown peer")

	// ErrInvalidPublicKey is returned when a supplied verification key is
	// not a valid Ed25519 public key.
	ErrInvalidPublicKey = errors.New("invalid ed25519 public key")

	// ErrAuthenticationFailed is returned when a trusted sender's signature
	// does not verify over the message content.
	ErrAuthenticationFailed = errors.New("authentication failed: invalid message signature")

	// ErrInvalidChallenge is returned when a challenge is not exactly
	// [ChallengeSize] bytes.
	ErrInvalidChallenge = errors.New("invalid challenge")
)
