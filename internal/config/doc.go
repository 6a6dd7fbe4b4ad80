// Package config provides configuration loading, merging, and validation
// facilities for the keychain-sync server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. All secrets (token signing
// key, record hash key) live in the merged config and are injected into the
// components that need them at construction time; nothing in this repository
// reads them from package-level state.
package config
