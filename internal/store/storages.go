// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

// ClientStorages groups the record store and the settings repository used by
// the service layer.
type ClientStorages struct {
	// Records holds ledger rows.
	Records Store
	// Settings holds currency and encryption settings.
	Settings SettingsRepository

	db *DB
}

// NewClientStorages opens the SQL database selected by cfg.Driver, runs
// pending migrations and wires a settings file next to it. The remote driver
// is not handled here; use [NewRemoteClientStorages].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("func", "NewClientStorages").Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Records:  NewSQLStore(db, log),
		Settings: NewSettingsFile(cfg.SettingsPath),
		db:       db,
	}, nil
}

// NewRemoteClientStorages pairs an externally built record store (the REST
// adapter) with a local settings file.
func NewRemoteClientStorages(records Store, cfg config.ClientStorage) *ClientStorages {
	return &ClientStorages{
		Records:  records,
		Settings: NewSettingsFile(cfg.SettingsPath),
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
