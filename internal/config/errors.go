// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing device ID, token sign key, or hash key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidHubConfigs indicates invalid notification-hub settings
	// (for example, a negative queue capacity).
	ErrInvalidHubConfigs = errors.New("invalid hub configuration")
)
