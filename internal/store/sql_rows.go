// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// LookupTable resolves name to one of [models.LedgerTables].
func LookupTable(name string) (models.Table, error) {
	table, ok := models.TableByName(name)
	if !ok {
		return models.Table{}, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return table, nil
}

// FlatColumns converts row into the flat column set written to table.
// Exactly one payload form is written; the other is explicitly nulled so a
// row never carries both. A nil payload writes neither form.
func FlatColumns(table models.Table, row models.StorageRow) map[string]any {
	flat := make(map[string]any, len(row.Columns)+len(table.SensitiveColumns)+2)

	for name, value := range row.Columns {
		if isReservedColumn(table, name) {
			continue
		}
		flat[name] = value
	}

	switch p := row.Payload.(type) {
	case models.ClearPayload:
		for _, name := range table.SensitiveColumns {
			flat[name] = p.Fields[name]
		}
		flat[models.ColumnCiphertext] = nil
		flat[models.ColumnIV] = nil
	case models.EncryptedPayload:
		for _, name := range table.SensitiveColumns {
			flat[name] = nil
		}
		flat[models.ColumnCiphertext] = p.Envelope.Ciphertext
		flat[models.ColumnIV] = p.Envelope.IV
	}

	return flat
}

// RowFromColumns is the inverse of [FlatColumns]. A non-null ciphertext makes
// the row encrypted. Store implementations share it so that this is the only
// place deciding a row's form.
func RowFromColumns(table models.Table, flat map[string]any) (models.StorageRow, error) {
	id, _ := flat[models.ColumnID].(string)
	if id == "" {
		return models.StorageRow{}, fmt.Errorf("%w: missing id", ErrMalformedRow)
	}

	row := models.StorageRow{ID: id, Columns: make(map[string]any)}
	for name, value := range flat {
		if isReservedColumn(table, name) {
			continue
		}
		row.Columns[name] = value
	}

	ciphertext, hasCiphertext := flat[models.ColumnCiphertext].(string)
	iv, hasIV := flat[models.ColumnIV].(string)
	if hasCiphertext != hasIV {
		return models.StorageRow{}, fmt.Errorf("%w: %s/%s has a half envelope", ErrMalformedRow, table.Name, id)
	}

	if hasCiphertext {
		row.Payload = models.EncryptedPayload{
			Envelope: models.EncryptedEnvelope{Ciphertext: ciphertext, IV: iv},
		}
		return row, nil
	}

	fields := make(map[string]any, len(table.SensitiveColumns))
	for _, name := range table.SensitiveColumns {
		if value := flat[name]; value != nil {
			fields[name] = value
		}
	}
	row.Payload = models.ClearPayload{Fields: fields}

	return row, nil
}

func isReservedColumn(table models.Table, name string) bool {
	switch name {
	case models.ColumnID, models.ColumnCiphertext, models.ColumnIV:
		return true
	}
	return slices.Contains(table.SensitiveColumns, name)
}

// scanRows reads every row of rows into flat maps. Driver []byte values are
// copied into strings.
func scanRows(rows *sql.Rows, table models.Table) ([]models.StorageRow, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	result := make([]models.StorageRow, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err = rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		flat := make(map[string]any, len(columns))
		for i, name := range columns {
			if b, ok := values[i].([]byte); ok {
				flat[name] = string(b)
				continue
			}
			flat[name] = values[i]
		}

		row, err := RowFromColumns(table, flat)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
