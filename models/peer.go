// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TrustLevel describes how far a peer device has progressed through the
// trust state machine.
type TrustLevel string

const (
	TrustLevelUntrusted TrustLevel = "untrusted"
	TrustLevelTrusted   TrustLevel = "trusted"
)

// TrustedPeer is one device in an account's trust circle.
//
// Exactly one peer per trust manager carries IsCurrentDevice=true; that peer
// is created trusted at construction and can never be revoked.
type TrustedPeer struct {
	// UserID is the owning account. Set server-side from the session.
	UserID int64 `json:"-"`

	// PeerID is the stable device identifier.
	PeerID string `json:"peer_id"`

	// PublicKey is the peer's Ed25519 verification key (32 bytes).
	PublicKey []byte `json:"public_key"`

	// LastSeen is bumped on every authenticated interaction with the peer.
	LastSeen time.Time `json:"last_seen"`

	// IsCurrentDevice marks the device this trust manager runs on.
	IsCurrentDevice bool `json:"is_current_device"`

	// TrustLevel is the peer's position in the trust state machine.
	TrustLevel TrustLevel `json:"trust_level"`
}

// SignedMessage is a peer-to-peer sync message with its detached signature.
// Content is signed as-is; the receiver resolves SenderID against its
// trusted-peer set before any signature check.
type SignedMessage struct {
	SenderID  string `json:"sender_id"`
	Content   []byte `json:"content"`
	Signature []byte `json:"signature"`
}
