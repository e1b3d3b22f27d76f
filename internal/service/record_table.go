// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/codec"
	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// recordTable is the type-erased view of a table codec used by operations
// that walk every row regardless of its record type.
type recordTable interface {
	table() models.Table
	// open checks that row can be read with key.
	open(row models.StorageRow, key *crypto.KeyMaterial) error
	// scaleAmounts builds the partial row replacing every amount a with fn(a).
	scaleAmounts(row models.StorageRow, fn func(float64) float64, now time.Time, key *crypto.KeyMaterial) (models.StorageRow, error)
	// reseal builds the partial row writing the sensitive subset under key.
	reseal(row models.StorageRow, now time.Time, key *crypto.KeyMaterial) (models.StorageRow, error)
}

type codecTable[R any, S any] struct {
	codec *codec.Codec[R, S]
	scale func(secrets *S, fn func(float64) float64)
}

func newTransactionTable(c *codec.TransactionCodec) recordTable {
	return &codecTable[models.Transaction, models.TransactionSecrets]{
		codec: c,
		scale: (*models.TransactionSecrets).ScaleAmounts,
	}
}

func newGoalTable(c *codec.GoalCodec) recordTable {
	return &codecTable[models.Goal, models.GoalSecrets]{
		codec: c,
		scale: (*models.GoalSecrets).ScaleAmounts,
	}
}

func (t *codecTable[R, S]) table() models.Table {
	return t.codec.Table()
}

func (t *codecTable[R, S]) open(row models.StorageRow, key *crypto.KeyMaterial) error {
	_, err := t.codec.Open(row, key)
	return err
}

func (t *codecTable[R, S]) scaleAmounts(row models.StorageRow, fn func(float64) float64, now time.Time, key *crypto.KeyMaterial) (models.StorageRow, error) {
	return t.codec.MergeUpdate(row, codec.Patch[S]{
		Columns: codec.Touched(now),
		Secrets: func(s *S) { t.scale(s, fn) },
	}, key)
}

func (t *codecTable[R, S]) reseal(row models.StorageRow, now time.Time, key *crypto.KeyMaterial) (models.StorageRow, error) {
	return t.codec.MergeUpdate(row, codec.Patch[S]{
		Columns: codec.Touched(now),
		Secrets: func(*S) {},
	}, key)
}
