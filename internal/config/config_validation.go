// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// validate checks that the merged [StructuredConfig] is usable. Only checks
// shared by every runtime live here; driver-specific requirements are
// enforced by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverSQLite, DriverPostgres, DriverRemote:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.SettingsPath == "" {
		return fmt.Errorf("%w: empty settings path", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Driver {
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
		}
	case DriverRemote:
		if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Rebase.Concurrency < 1 || cfg.Rebase.ChunkSize < 1 {
		return ErrInvalidRebaseConfigs
	}

	if cfg.Workers.AutoLockAfter < 0 {
		return ErrInvalidWorkerConfigs
	}

	if len(cfg.App.DefaultCurrency) != 3 {
		return ErrInvalidAppConfigs
	}

	return nil
}
