// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/migrations"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

var transactionColumns = []string{
	"id", "type", "date", "category_id", "mood", "tags",
	"amount", "description", "notes", "ciphertext", "iv",
	"created_at", "updated_at",
}

func newTestSQLStore(t *testing.T) (*sqlStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	db := newDB(conn, migrations.DialectSQLite, sq.Question, NewSQLiteErrorClassifier(), l)
	return &sqlStore{db: db, logger: l}, mock
}

func encryptedTxRow(id string) []driver.Value {
	return []driver.Value{
		id, "expense", "2026-03-01", "food", nil, `["lunch"]`,
		nil, nil, nil, "Y2lwaGVy", "aXYtYnl0ZXM=",
		"2026-03-01T10:00:00Z", "2026-03-01T10:00:00Z",
	}
}

func clearTxRow(id string) []driver.Value {
	return []driver.Value{
		id, "income", "2026-03-02", nil, "happy", nil,
		42.5, []byte("salary"), nil, nil, nil,
		"2026-03-02T10:00:00Z", "2026-03-02T10:00:00Z",
	}
}

func TestSQLStore_ReadAll_MixedForms(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM transactions ORDER BY created_at, id")).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(encryptedTxRow("tx-1")...).
			AddRow(clearTxRow("tx-2")...))

	rows, err := s.ReadAll(context.Background(), "transactions")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	enc := rows[0]
	assert.Equal(t, "tx-1", enc.ID)
	assert.Equal(t, models.EncryptedPayload{
		Envelope: models.EncryptedEnvelope{Ciphertext: "Y2lwaGVy", IV: "aXYtYnl0ZXM="},
	}, enc.Payload)
	assert.Equal(t, "expense", enc.Columns["type"])
	assert.NotContains(t, enc.Columns, "amount")
	assert.NotContains(t, enc.Columns, models.ColumnCiphertext)

	plain := rows[1]
	assert.Equal(t, "tx-2", plain.ID)
	assert.False(t, plain.IsEncrypted())
	assert.Equal(t, models.ClearPayload{Fields: map[string]any{
		"amount":      42.5,
		"description": "salary",
	}}, plain.Payload)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_ReadAll_UnknownTable(t *testing.T) {
	s, mock := newTestSQLStore(t)

	_, err := s.ReadAll(context.Background(), "users")
	assert.ErrorIs(t, err, ErrUnknownTable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_ReadAll_HalfEnvelopeIsMalformed(t *testing.T) {
	s, mock := newTestSQLStore(t)

	row := encryptedTxRow("tx-1")
	row[10] = nil // iv

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows(transactionColumns).AddRow(row...))

	_, err := s.ReadAll(context.Background(), "transactions")
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestSQLStore_ReadAll_QueryError(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery("SELECT").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	_, err := s.ReadAll(context.Background(), "goals")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.True(t, s.db.retryable(err))
}

// TestSQLStore_Insert_EncryptedNullsClearColumns verifies that an encrypted
// write never leaves clear sensitive columns populated.
func TestSQLStore_Insert_EncryptedNullsClearColumns(t *testing.T) {
	s, mock := newTestSQLStore(t)

	row := models.StorageRow{
		ID: "tx-1",
		Columns: map[string]any{
			"type":       "expense",
			"date":       "2026-03-01",
			"created_at": "2026-03-01T10:00:00Z",
			"updated_at": "2026-03-01T10:00:00Z",
			// sensitive keys in Columns are ignored
			"amount": 99.0,
		},
		Payload: models.EncryptedPayload{
			Envelope: models.EncryptedEnvelope{Ciphertext: "Y2lwaGVy", IV: "aXYtYnl0ZXM="},
		},
	}

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO transactions (amount,ciphertext,created_at,date,description,id,iv,notes,type,updated_at) VALUES (?,?,?,?,?,?,?,?,?,?)")).
		WithArgs(nil, "Y2lwaGVy", "2026-03-01T10:00:00Z", "2026-03-01", nil, "tx-1", "aXYtYnl0ZXM=", nil, "expense", "2026-03-01T10:00:00Z").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM transactions WHERE id = ?")).
		WithArgs("tx-1").
		WillReturnRows(sqlmock.NewRows(transactionColumns).AddRow(encryptedTxRow("tx-1")...))

	saved, err := s.Insert(context.Background(), "transactions", row)
	require.NoError(t, err)
	assert.True(t, saved.IsEncrypted())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Insert_ClearNullsEnvelope(t *testing.T) {
	s, mock := newTestSQLStore(t)

	row := models.StorageRow{
		ID: "g-1",
		Columns: map[string]any{
			"name":       "Holiday",
			"created_at": "2026-03-01T10:00:00Z",
			"updated_at": "2026-03-01T10:00:00Z",
		},
		Payload: models.ClearPayload{Fields: map[string]any{
			"target_amount":  1000.0,
			"current_amount": 250.0,
		}},
	}

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO goals (ciphertext,created_at,current_amount,description,id,iv,name,target_amount,updated_at) VALUES (?,?,?,?,?,?,?,?,?)")).
		WithArgs(nil, "2026-03-01T10:00:00Z", 250.0, nil, "g-1", nil, "Holiday", 1000.0, "2026-03-01T10:00:00Z").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT").
		WithArgs("g-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "deadline", "target_amount", "current_amount", "description",
			"ciphertext", "iv", "created_at", "updated_at",
		}).AddRow("g-1", "Holiday", nil, 1000.0, 250.0, nil, nil, nil, "2026-03-01T10:00:00Z", "2026-03-01T10:00:00Z"))

	saved, err := s.Insert(context.Background(), "goals", row)
	require.NoError(t, err)
	assert.Equal(t, "Holiday", saved.Columns["name"])
	assert.Equal(t, models.ClearPayload{Fields: map[string]any{
		"target_amount":  1000.0,
		"current_amount": 250.0,
	}}, saved.Payload)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Insert_MissingID(t *testing.T) {
	s, mock := newTestSQLStore(t)

	_, err := s.Insert(context.Background(), "transactions", models.StorageRow{})
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Insert_ConstraintViolation(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint})

	_, err := s.Insert(context.Background(), "transactions", models.StorageRow{ID: "tx-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.False(t, s.db.retryable(err))
}

// TestSQLStore_Update_NilPayloadLeavesSensitiveColumns verifies that a
// columns-only update touches neither sensitive form.
func TestSQLStore_Update_NilPayloadLeavesSensitiveColumns(t *testing.T) {
	s, mock := newTestSQLStore(t)

	partial := models.StorageRow{Columns: map[string]any{
		"mood":       "calm",
		"updated_at": "2026-03-05T10:00:00Z",
	}}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions SET mood = ?, updated_at = ? WHERE id = ?")).
		WithArgs("calm", "2026-03-05T10:00:00Z", "tx-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT").
		WithArgs("tx-1").
		WillReturnRows(sqlmock.NewRows(transactionColumns).AddRow(encryptedTxRow("tx-1")...))

	_, err := s.Update(context.Background(), "transactions", "tx-1", partial)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Update_EncryptedPayload(t *testing.T) {
	s, mock := newTestSQLStore(t)

	partial := models.StorageRow{
		Columns: map[string]any{"updated_at": "2026-03-05T10:00:00Z"},
		Payload: models.EncryptedPayload{Envelope: models.EncryptedEnvelope{Ciphertext: "bmV3", IV: "aXY="}},
	}

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE transactions SET amount = ?, ciphertext = ?, description = ?, iv = ?, notes = ?, updated_at = ? WHERE id = ?")).
		WithArgs(nil, "bmV3", nil, "aXY=", nil, "2026-03-05T10:00:00Z", "tx-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT").
		WithArgs("tx-1").
		WillReturnRows(sqlmock.NewRows(transactionColumns).AddRow(encryptedTxRow("tx-1")...))

	_, err := s.Update(context.Background(), "transactions", "tx-1", partial)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Update_NotFound(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectExec("UPDATE goals").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := s.Update(context.Background(), "goals", "missing", models.StorageRow{
		Columns: map[string]any{"name": "x"},
	})
	assert.ErrorIs(t, err, ErrRowNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Delete(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE id = ?")).
		WithArgs("tx-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE id = ?")).
		WithArgs("tx-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), "transactions", "tx-1"))
	assert.ErrorIs(t, s.Delete(context.Background(), "transactions", "tx-1"), ErrRowNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_PostgresPlaceholders(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	l := logger.Nop()
	s := &sqlStore{
		db:     newDB(conn, migrations.DialectPostgres, sq.Dollar, NewPostgresErrorClassifier(), l),
		logger: l,
	}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM goals WHERE id = $1")).
		WithArgs("g-1").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})

	err = s.Delete(context.Background(), "goals", "g-1")
	require.Error(t, err)
	assert.True(t, s.db.retryable(err))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
}
