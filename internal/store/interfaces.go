// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Store persists ledger rows. Implementations own the flat column layout of
// each table and translate it to and from [models.StorageRow]: a row is
// written either with clear sensitive columns or with ciphertext and iv, and
// the opposite form is always nulled.
type Store interface {
	// ReadAll returns every row of table.
	ReadAll(ctx context.Context, table string) ([]models.StorageRow, error)
	// Insert writes a new row and returns it as stored.
	Insert(ctx context.Context, table string, row models.StorageRow) (models.StorageRow, error)
	// Update applies partial to the row identified by id and returns the
	// resulting row. A nil partial.Payload leaves sensitive columns as they are.
	Update(ctx context.Context, table, id string, partial models.StorageRow) (models.StorageRow, error)
	// Delete removes the row identified by id.
	Delete(ctx context.Context, table, id string) error
}

// SettingsRepository persists [models.LocalSettings].
type SettingsRepository interface {
	// Load returns the saved settings, or zero settings when none exist yet.
	Load(ctx context.Context) (models.LocalSettings, error)
	// Save replaces the saved settings.
	Save(ctx context.Context, settings models.LocalSettings) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried. Implementations exist per SQL driver.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
