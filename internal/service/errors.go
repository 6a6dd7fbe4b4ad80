// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrStaleGenCount marks a pushed record whose claimed base generation
	// is ahead of the zone counter. The device must pull before retrying.
	ErrStaleGenCount = errors.New("stale gencount")

	// ErrInvalidManifest marks a manifest whose digest does not match its
	// leaf set, or whose digest version is unsupported.
	ErrInvalidManifest = errors.New("invalid manifest")
)
