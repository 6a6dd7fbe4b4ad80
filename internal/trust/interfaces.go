// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package trust maintains an account's device trust circle: an Ed25519
// identity for the current device, challenge/response verification of new
// peers, and signing/verification of peer-to-peer sync messages.
package trust

import (
	"context"

	"github.com/MKhiriev/keychain-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/trust_mock.go -package=mock

// TrustService is the device trust contract consumed by the sync facade.
//
// Exactly one peer per manager carries IsCurrentDevice=true. That peer is
// created trusted at construction and can never be revoked.
type TrustService interface {
	// CurrentDeviceID returns the stable identifier of the device this
	// manager runs on.
	CurrentDeviceID() string

	// PublicKey returns the current device's Ed25519 verification key.
	PublicKey() []byte

	// GenerateChallenge produces a fresh CSPRNG challenge of
	// [ChallengeSize] bytes.
	GenerateChallenge() ([]byte, error)

	// SignChallenge signs a challenge with the current device's private key.
	SignChallenge(challenge []byte) ([]byte, error)

	// VerifyChallenge reports whether signature is a valid Ed25519 signature
	// over challenge under publicKey. Pure; touches no state.
	VerifyChallenge(publicKey, challenge, signature []byte) bool

	// EstablishTrust adds a peer to the trusted set, or refreshes its key if
	// already present. Idempotent; sets LastSeen to now.
	EstablishTrust(ctx context.Context, peerID string, publicKey []byte) error

	// RevokeTrust removes a peer from the trusted set. Revoking the current
	// device fails with [ErrCurrentDeviceRevocation].
	RevokeTrust(ctx context.Context, peerID string) error

	// IsPeerTrusted reports whether peerID is in the trusted set.
	IsPeerTrusted(ctx context.Context, peerID string) (bool, error)

	// UpdatePeerActivity bumps a trusted peer's LastSeen. Returns
	// [ErrUnknownPeer] for a peer outside the set.
	UpdatePeerActivity(ctx context.Context, peerID string) error

	// ListTrustedPeers returns the full trust circle.
	ListTrustedPeers(ctx context.Context) ([]models.TrustedPeer, error)

	// SignMessage wraps content in a [models.SignedMessage] signed by the
	// current device.
	SignMessage(content []byte) (models.SignedMessage, error)

	// VerifyMessage checks a signed message against the trusted set.
	// An unknown sender fails with [ErrUntrustedPeer] before any signature
	// check; a bad signature from a trusted sender fails with
	// [ErrAuthenticationFailed]. A successful verification bumps the sender's
	// LastSeen.
	VerifyMessage(ctx context.Context, message models.SignedMessage) error
}
