// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StorageRow is one row of a sensitive-field-bearing table as it crosses the
// store boundary.
//
// Columns holds the always-clear fields (type, date, category, ...). Payload
// holds the sensitive subset in exactly one of two forms, see [RowPayload].
// In a partial update a nil Payload means the sensitive fields are not
// touched.
type StorageRow struct {
	ID      string
	Columns map[string]any
	Payload RowPayload
}

// RowPayload is the sensitive part of a [StorageRow]. The interface is sealed:
// the only implementations are [ClearPayload] and [EncryptedPayload], so a
// type switch over both is exhaustive.
type RowPayload interface {
	isRowPayload()
}

// ClearPayload carries sensitive fields in clear, keyed by column name.
// Used when encryption is disabled for the ledger.
type ClearPayload struct {
	Fields map[string]any
}

// EncryptedPayload carries the whole sensitive subset as one envelope.
type EncryptedPayload struct {
	Envelope EncryptedEnvelope
}

func (ClearPayload) isRowPayload()     {}
func (EncryptedPayload) isRowPayload() {}

// IsEncrypted reports whether the row carries an envelope.
func (r StorageRow) IsEncrypted() bool {
	_, ok := r.Payload.(EncryptedPayload)
	return ok
}

// Table describes a sensitive-field-bearing table.
type Table struct {
	// Name is the table name in the store.
	Name string

	// SensitiveColumns are the clear column names of the sensitive subset.
	// They are NULL whenever the row is stored encrypted.
	SensitiveColumns []string
}

// Envelope column names shared by every table.
const (
	ColumnCiphertext = "ciphertext"
	ColumnIV         = "iv"
	ColumnID         = "id"
)

// Tables known to the ledger.
var (
	TransactionsTable = Table{
		Name:             "transactions",
		SensitiveColumns: []string{"amount", "description", "notes"},
	}

	GoalsTable = Table{
		Name:             "goals",
		SensitiveColumns: []string{"target_amount", "current_amount", "description"},
	}
)

// LedgerTables lists every table whose rows carry amounts.
func LedgerTables() []Table {
	return []Table{TransactionsTable, GoalsTable}
}

// TableByName returns the table descriptor for name.
func TableByName(name string) (Table, bool) {
	for _, t := range LedgerTables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
