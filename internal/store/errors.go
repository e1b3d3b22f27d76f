// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnknownTable is returned when a table name is not one of
	// [models.LedgerTables].
	ErrUnknownTable = errors.New("unknown table")

	// ErrRowNotFound is returned when an update or delete targets an id that
	// does not exist.
	ErrRowNotFound = errors.New("row was not found")

	// ErrRowNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrRowNotSaved = errors.New("row was not saved")

	// ErrMalformedRow is returned when a stored row has no id or carries
	// only one half of an envelope.
	ErrMalformedRow = errors.New("malformed row")

	// ErrSettingsCorrupted is returned when the settings file cannot be
	// decoded.
	ErrSettingsCorrupted = errors.New("settings file is corrupted")

	// ErrUnsupportedDriver is returned by [NewClientStorages] for drivers it
	// cannot open itself.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
