// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type sqlStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLStore returns a [Store] backed by db.
func NewSQLStore(db *DB, log *logger.Logger) Store {
	return &sqlStore{db: db, logger: log}
}

func (s *sqlStore) ReadAll(ctx context.Context, tableName string) ([]models.StorageRow, error) {
	table, err := LookupTable(tableName)
	if err != nil {
		return nil, err
	}

	query, args, err := s.db.builder.
		Select("*").
		From(table.Name).
		OrderBy("created_at", models.ColumnID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.query(ctx, "sqlStore.ReadAll", table, query, args...)
}

func (s *sqlStore) Insert(ctx context.Context, tableName string, row models.StorageRow) (models.StorageRow, error) {
	table, err := LookupTable(tableName)
	if err != nil {
		return models.StorageRow{}, err
	}
	if row.ID == "" {
		return models.StorageRow{}, fmt.Errorf("%w: missing id", ErrMalformedRow)
	}

	values := FlatColumns(table, row)
	values[models.ColumnID] = row.ID

	query, args, err := s.db.builder.
		Insert(table.Name).
		SetMap(values).
		ToSql()
	if err != nil {
		return models.StorageRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := s.exec(ctx, "sqlStore.Insert", query, args...)
	if err != nil {
		return models.StorageRow{}, err
	}
	if affected == 0 {
		return models.StorageRow{}, ErrRowNotSaved
	}

	return s.getByID(ctx, table, row.ID)
}

func (s *sqlStore) Update(ctx context.Context, tableName, id string, partial models.StorageRow) (models.StorageRow, error) {
	table, err := LookupTable(tableName)
	if err != nil {
		return models.StorageRow{}, err
	}

	values := FlatColumns(table, partial)
	if len(values) > 0 {
		query, args, err := s.db.builder.
			Update(table.Name).
			SetMap(values).
			Where(sq.Eq{models.ColumnID: id}).
			ToSql()
		if err != nil {
			return models.StorageRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		affected, err := s.exec(ctx, "sqlStore.Update", query, args...)
		if err != nil {
			return models.StorageRow{}, err
		}
		if affected == 0 {
			return models.StorageRow{}, fmt.Errorf("%w: %s/%s", ErrRowNotFound, table.Name, id)
		}
	}

	return s.getByID(ctx, table, id)
}

func (s *sqlStore) Delete(ctx context.Context, tableName, id string) error {
	table, err := LookupTable(tableName)
	if err != nil {
		return err
	}

	query, args, err := s.db.builder.
		Delete(table.Name).
		Where(sq.Eq{models.ColumnID: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := s.exec(ctx, "sqlStore.Delete", query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%s", ErrRowNotFound, table.Name, id)
	}

	return nil
}

func (s *sqlStore) getByID(ctx context.Context, table models.Table, id string) (models.StorageRow, error) {
	query, args, err := s.db.builder.
		Select("*").
		From(table.Name).
		Where(sq.Eq{models.ColumnID: id}).
		ToSql()
	if err != nil {
		return models.StorageRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.query(ctx, "sqlStore.getByID", table, query, args...)
	if err != nil {
		return models.StorageRow{}, err
	}
	if len(rows) == 0 {
		return models.StorageRow{}, fmt.Errorf("%w: %s/%s", ErrRowNotFound, table.Name, id)
	}

	return rows[0], nil
}

func (s *sqlStore) query(ctx context.Context, fn string, table models.Table, query string, args ...any) ([]models.StorageRow, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", fn).Bool("retryable", s.db.retryable(err)).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result, err := scanRows(rows, table)
	if err != nil {
		s.logger.Err(err).Str("func", fn).Str("table", table.Name).Msg("error scanning rows")
		return nil, err
	}

	return result, nil
}

func (s *sqlStore) exec(ctx context.Context, fn, query string, args ...any) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", fn).Bool("retryable", s.db.retryable(err)).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
