// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHasher_MatchesDirectHMAC(t *testing.T) {
	hasher := NewHasher(testHashKey)

	data := []byte("wrapped-key|enc-item|1")

	sum1 := hasher.Hash(data)
	sum2 := hasher.Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHasher_DifferentKeysDiverge(t *testing.T) {
	a := NewHasher("key-a")
	b := NewHasher("key-b")

	data := []byte("same-payload")

	if bytes.Equal(a.Hash(data), b.Hash(data)) {
		t.Error("different keys must produce different digests")
	}
}

func TestHasher_DifferentPayloadsDiverge(t *testing.T) {
	hasher := NewHasher(testHashKey)

	hash1 := hasher.HashHex([]byte("record-1"))
	hash2 := hasher.HashHex([]byte("record-2"))

	if hash1 == hash2 {
		t.Error("different payloads must produce different hashes")
	}
}

func TestHasher_Verify(t *testing.T) {
	hasher := NewHasher(testHashKey)

	data := []byte("ciphertext-fields")
	digest := hasher.HashHex(data)

	if !hasher.Verify(data, digest) {
		t.Error("expected digest to verify against original data")
	}
	if hasher.Verify([]byte("tampered"), digest) {
		t.Error("expected digest to fail for tampered data")
	}
	if hasher.Verify(data, "not-hex!") {
		t.Error("expected malformed digest to fail verification")
	}
}

func TestHasher_ConcurrentUse(t *testing.T) {
	hasher := NewHasher(testHashKey)
	data := []byte("shared-input")
	want := hasher.HashHex(data)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if got := hasher.HashHex(data); got != want {
					t.Errorf("concurrent hash mismatch: got %s", got)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
