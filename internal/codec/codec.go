// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec maps financial records to and from their storage rows.
//
// A record splits into always-clear columns and a sensitive subset. With a
// key, the subset is encrypted as one JSON object and only the envelope is
// stored; without a key, the subset is stored in clear. A row never carries
// both forms.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// ErrMissingPayload is returned when a full row carries no sensitive part.
var ErrMissingPayload = errors.New("row has no sensitive payload")

// Shape describes one record type: its table, how it splits into columns
// and secrets, and how it is put back together.
type Shape[R any, S any] interface {
	Table() models.Table
	Split(record R) (id string, columns map[string]any, secrets S)
	Assemble(id string, columns map[string]any, secrets S) (R, error)
}

// Patch is a partial update. Columns overwrite clear columns. Secrets, when
// non-nil, mutates the recovered sensitive subset; the whole subset is then
// written again.
type Patch[S any] struct {
	Columns map[string]any
	Secrets func(*S)
}

// Codec converts records of one shape.
type Codec[R any, S any] struct {
	shape    Shape[R, S]
	keychain crypto.KeyChainService
}

// New returns a codec for shape that encrypts with keychain.
func New[R any, S any](shape Shape[R, S], keychain crypto.KeyChainService) *Codec[R, S] {
	return &Codec[R, S]{shape: shape, keychain: keychain}
}

// Table returns the table this codec writes to.
func (c *Codec[R, S]) Table() models.Table {
	return c.shape.Table()
}

// ToStorage builds the storage row for record. A nil key stores the
// sensitive subset in clear.
func (c *Codec[R, S]) ToStorage(record R, key *crypto.KeyMaterial) (models.StorageRow, error) {
	id, columns, secrets := c.shape.Split(record)

	payload, err := c.seal(secrets, key)
	if err != nil {
		return models.StorageRow{}, err
	}

	return models.StorageRow{ID: id, Columns: columns, Payload: payload}, nil
}

// FromStorage rebuilds a record from row. An encrypted row needs a key; a
// clear row ignores it.
func (c *Codec[R, S]) FromStorage(row models.StorageRow, key *crypto.KeyMaterial) (R, error) {
	var zero R

	secrets, err := c.Open(row, key)
	if err != nil {
		return zero, err
	}

	record, err := c.shape.Assemble(row.ID, row.Columns, secrets)
	if err != nil {
		return zero, fmt.Errorf("assemble %s row %s: %w", c.shape.Table().Name, row.ID, err)
	}
	return record, nil
}

// Open returns the sensitive subset of row.
func (c *Codec[R, S]) Open(row models.StorageRow, key *crypto.KeyMaterial) (S, error) {
	var secrets S

	switch p := row.Payload.(type) {
	case models.ClearPayload:
		if err := fromFields(p.Fields, &secrets); err != nil {
			return secrets, fmt.Errorf("decode clear %s row %s: %w", c.shape.Table().Name, row.ID, err)
		}
	case models.EncryptedPayload:
		if key == nil {
			return secrets, crypto.ErrEncryptionKeyRequired
		}
		if err := c.keychain.Decrypt(p.Envelope, key, &secrets); err != nil {
			return secrets, err
		}
	case nil:
		return secrets, ErrMissingPayload
	}

	return secrets, nil
}

// MergeUpdate turns patch into the partial row to send to the store.
// Encrypted fields cannot be updated one by one: the existing envelope is
// opened, patched and sealed again as a whole.
func (c *Codec[R, S]) MergeUpdate(existing models.StorageRow, patch Patch[S], key *crypto.KeyMaterial) (models.StorageRow, error) {
	out := models.StorageRow{ID: existing.ID, Columns: patch.Columns}
	if patch.Secrets == nil {
		return out, nil
	}

	secrets, err := c.Open(existing, key)
	if err != nil {
		return models.StorageRow{}, err
	}

	patch.Secrets(&secrets)

	if out.Payload, err = c.seal(secrets, key); err != nil {
		return models.StorageRow{}, err
	}
	return out, nil
}

func (c *Codec[R, S]) seal(secrets S, key *crypto.KeyMaterial) (models.RowPayload, error) {
	if key == nil {
		fields, err := toFields(secrets)
		if err != nil {
			return nil, fmt.Errorf("encode clear %s secrets: %w", c.shape.Table().Name, err)
		}
		return models.ClearPayload{Fields: fields}, nil
	}

	envelope, err := c.keychain.Encrypt(secrets, key)
	if err != nil {
		return nil, fmt.Errorf("encrypt %s secrets: %w", c.shape.Table().Name, err)
	}
	return models.EncryptedPayload{Envelope: envelope}, nil
}

// toFields uses the JSON names of S as column names, so the clear form and
// the envelope plaintext share one schema.
func toFields(secrets any) (map[string]any, error) {
	raw, err := json.Marshal(secrets)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func fromFields(fields map[string]any, target any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}
