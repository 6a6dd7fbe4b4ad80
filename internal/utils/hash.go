package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher provides keyed HMAC-SHA256 hashing for sync record fingerprints.
// Each Hasher owns its key and a pool of reusable hash instances, so two
// hashers with different keys never interfere.
type Hasher struct {
	pool sync.Pool
}

// NewHasher constructs a Hasher keyed with hashKey. All digests produced by
// the returned Hasher are HMAC-SHA256 under that key.
func NewHasher(hashKey string) *Hasher {
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, []byte(hashKey))
			},
		},
	}
}

// Hash computes an HMAC-SHA256 digest over the given byte slice using a
// hash instance pulled from the pool.
func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// HashHex computes an HMAC-SHA256 digest over data and returns it
// hex-encoded. This is the form stored in sync_records.hash.
func (h *Hasher) HashHex(data []byte) string {
	return hex.EncodeToString(h.Hash(data))
}

// Verify reports whether the hex-encoded digest matches data under the
// hasher's key. Comparison is constant-time.
func (h *Hasher) Verify(data []byte, digestHex string) bool {
	expected, err := hex.DecodeString(digestHex)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Hash(data), expected)
}
