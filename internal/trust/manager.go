// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trust

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/internal/store"
	"github.com/MKhiriev/keychain-sync/models"
)

// ChallengeSize is the length in bytes of a trust-establishment challenge.
const ChallengeSize = 32

// manager implements [TrustService] over the peer repository. The current
// device's private key lives in process memory only; it is never persisted
// or serialized.
type manager struct {
	userID     int64
	deviceID   string
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
	peers      store.PeerRepository
	logger     *logger.Logger
}

// NewManager generates a fresh Ed25519 identity for the current device and
// registers it as a permanently trusted peer.
func NewManager(ctx context.Context, userID int64, deviceID string, peers store.PeerRepository, log *logger.Logger) (TrustService, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("error generating device identity: %w", err)
	}

	m := &manager{
		userID:     userID,
		deviceID:   deviceID,
		privateKey: privateKey,
		publicKey:  publicKey,
		peers:      peers,
		logger:     log,
	}

	err = peers.PersistTrustedPeer(ctx, models.TrustedPeer{
		UserID:          userID,
		PeerID:          deviceID,
		PublicKey:       publicKey,
		LastSeen:        time.Now(),
		IsCurrentDevice: true,
		TrustLevel:      models.TrustLevelTrusted,
	})
	if err != nil {
		return nil, fmt.Errorf("error registering current device: %w", err)
	}

	log.Info().
		Str("func", "trust.NewManager").
		Str("device_id", deviceID).
		Msg("device identity created")

	return m, nil
}

func (m *manager) CurrentDeviceID() string {
	return m.deviceID
}

// PublicKey returns a copy so callers cannot mutate the identity.
func (m *manager) PublicKey() []byte {
	key := make([]byte, len(m.publicKey))
	copy(key, m.publicKey)
	return key
}

func (m *manager) GenerateChallenge() ([]byte, error) {
	challenge := make([]byte, ChallengeSize)
	if _, err := rand.Read(challenge); err != nil {
		return nil, fmt.Errorf("error generating challenge: %w", err)
	}
	return challenge, nil
}

func (m *manager) SignChallenge(challenge []byte) ([]byte, error) {
	if len(challenge) != ChallengeSize {
		return nil, ErrInvalidChallenge
	}
	return ed25519.Sign(m.privateKey, challenge), nil
}

// VerifyChallenge is pure: it touches no manager state and can be used to
// check a remote device's response before any trust is granted.
func (m *manager) VerifyChallenge(publicKey, challenge, signature []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(challenge) != ChallengeSize {
		return false
	}
	return ed25519.Verify(publicKey, challenge, signature)
}

func (m *manager) EstablishTrust(ctx context.Context, peerID string, publicKey []byte) error {
	log := logger.FromContext(ctx)

	if peerID == "" {
		return ErrUnknownPeer
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return ErrInvalidPublicKey
	}

	// Re-establishing the current device is a no-op: it is trusted already
	// and its key never changes.
	if peerID == m.deviceID {
		return nil
	}

	err := m.peers.PersistTrustedPeer(ctx, models.TrustedPeer{
		UserID:          m.userID,
		PeerID:          peerID,
		PublicKey:       publicKey,
		LastSeen:        time.Now(),
		IsCurrentDevice: false,
		TrustLevel:      models.TrustLevelTrusted,
	})
	if err != nil {
		log.Err(err).
			Str("func", "manager.EstablishTrust").
			Str("peer_id", peerID).
			Msg("failed to persist trusted peer")
		return fmt.Errorf("error establishing trust: %w", err)
	}

	log.Info().
		Str("func", "manager.EstablishTrust").
		Str("peer_id", peerID).
		Msg("peer trusted")

	return nil
}

func (m *manager) RevokeTrust(ctx context.Context, peerID string) error {
	log := logger.FromContext(ctx)

	if peerID == m.deviceID {
		return ErrCurrentDeviceRevocation
	}

	err := m.peers.DeleteTrustedPeer(ctx, m.userID, peerID)
	if errors.Is(err, store.ErrPeerNotFound) {
		return ErrUnknownPeer
	}
	if err != nil {
		log.Err(err).
			Str("func", "manager.RevokeTrust").
			Str("peer_id", peerID).
			Msg("failed to delete trusted peer")
		return fmt.Errorf("error revoking trust: %w", err)
	}

	log.Info().
		Str("func", "manager.RevokeTrust").
		Str("peer_id", peerID).
		Msg("peer trust revoked")

	return nil
}

func (m *manager) IsPeerTrusted(ctx context.Context, peerID string) (bool, error) {
	peer, err := m.findPeer(ctx, peerID)
	if errors.Is(err, ErrUnknownPeer) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return peer.TrustLevel == models.TrustLevelTrusted, nil
}

func (m *manager) UpdatePeerActivity(ctx context.Context, peerID string) error {
	err := m.peers.TouchPeer(ctx, m.userID, peerID)
	if errors.Is(err, store.ErrPeerNotFound) {
		return ErrUnknownPeer
	}
	if err != nil {
		return fmt.Errorf("error updating peer activity: %w", err)
	}
	return nil
}

func (m *manager) ListTrustedPeers(ctx context.Context) ([]models.TrustedPeer, error) {
	peers, err := m.peers.LoadTrustedPeers(ctx, m.userID)
	if err != nil {
		return nil, fmt.Errorf("error listing trusted peers: %w", err)
	}
	return peers, nil
}

func (m *manager) SignMessage(content []byte) (models.SignedMessage, error) {
	return models.SignedMessage{
		SenderID:  m.deviceID,
		Content:   content,
		Signature: ed25519.Sign(m.privateKey, content),
	}, nil
}

// VerifyMessage fails closed: an unknown sender is rejected before the
// signature is looked at, so a forged sender id and a forged signature are
// indistinguishable to the caller of an untrusted message.
func (m *manager) VerifyMessage(ctx context.Context, message models.SignedMessage) error {
	log := logger.FromContext(ctx)

	peer, err := m.findPeer(ctx, message.SenderID)
	if errors.Is(err, ErrUnknownPeer) {
		log.Warn().
			Str("func", "manager.VerifyMessage").
			Str("sender_id", message.SenderID).
			Msg("rejected message from untrusted sender")
		return ErrUntrustedPeer
	}
	if err != nil {
		return err
	}
	if peer.TrustLevel != models.TrustLevelTrusted {
		return ErrUntrustedPeer
	}

	if len(peer.PublicKey) != ed25519.PublicKeySize ||
		!ed25519.Verify(ed25519.PublicKey(peer.PublicKey), message.Content, message.Signature) {
		log.Warn().
			Str("func", "manager.VerifyMessage").
			Str("sender_id", message.SenderID).
			Msg("rejected message with invalid signature")
		return ErrAuthenticationFailed
	}

	if err := m.UpdatePeerActivity(ctx, message.SenderID); err != nil {
		// Activity tracking is best effort; the message already verified.
		log.Warn().
			Str("func", "manager.VerifyMessage").
			Str("sender_id", message.SenderID).
			Msg("failed to bump peer activity")
	}

	return nil
}

func (m *manager) findPeer(ctx context.Context, peerID string) (models.TrustedPeer, error) {
	peers, err := m.peers.LoadTrustedPeers(ctx, m.userID)
	if err != nil {
		return models.TrustedPeer{}, fmt.Errorf("error loading trusted peers: %w", err)
	}

	for _, peer := range peers {
		if peer.PeerID == peerID {
			return peer, nil
		}
	}

	return models.TrustedPeer{}, ErrUnknownPeer
}
