// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "testing"

func TestKeyUsage_Can(t *testing.T) {
	tests := []struct {
		name  string
		mask  KeyUsage
		check KeyUsage
		want  bool
	}{
		{name: "single granted", mask: KeyUsageEncrypt, check: KeyUsageEncrypt, want: true},
		{name: "single denied", mask: KeyUsageEncrypt, check: KeyUsageDecrypt, want: false},
		{name: "all of subset granted", mask: KeyUsageWrap | KeyUsageUnwrap | KeyUsageDerive, check: KeyUsageWrap | KeyUsageUnwrap, want: true},
		{name: "partial subset denied", mask: KeyUsageWrap, check: KeyUsageWrap | KeyUsageUnwrap, want: false},
		{name: "zero check always allowed", mask: KeyUsageSign, check: 0, want: true},
		{name: "zero mask denies everything", mask: 0, check: KeyUsageVerify, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mask.Can(tt.check); got != tt.want {
				t.Errorf("Can(%b) on mask %b = %v, want %v", tt.check, tt.mask, got, tt.want)
			}
		})
	}
}

func TestKeyUsage_SigningKeyProfile(t *testing.T) {
	// An Ed25519 device identity key may sign and verify, nothing else.
	identity := KeyUsageSign | KeyUsageVerify

	if !identity.Can(KeyUsageSign) || !identity.Can(KeyUsageVerify) {
		t.Error("identity key must be able to sign and verify")
	}
	if identity.Can(KeyUsageWrap) || identity.Can(KeyUsageDerive) {
		t.Error("identity key must not wrap or derive")
	}
}
