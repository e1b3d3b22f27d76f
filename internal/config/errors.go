// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid REST adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, unknown driver or empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a default currency that is not a 3-letter code).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidRebaseConfigs indicates a non-positive conversion concurrency
	// or chunk size.
	ErrInvalidRebaseConfigs = errors.New("invalid rebase configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative auto-lock timeout).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
