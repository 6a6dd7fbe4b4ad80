// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account entity used for session authentication. The server
// never sees a master passphrase: AuthHash is a client-derived verifier
// (an HMAC over KDF output), re-hashed server-side before storage.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique account login.
	Login string `json:"login"`

	// AuthHash is the derived authentication verifier. Never plaintext.
	AuthHash string `json:"auth_hash"`

	// KDFSalt is the per-account salt clients feed into master-key
	// derivation. Not secret; clients fetch it before authenticating.
	KDFSalt []byte `json:"kdf_salt"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
