// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/codec"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/session"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type ledgerService struct {
	transactions recordRepo[models.Transaction, models.TransactionSecrets]
	goals        recordRepo[models.Goal, models.GoalSecrets]
	ids          IDGenerator
	now          func() time.Time
	logger       *logger.Logger
}

// NewLedgerService returns a [LedgerService] storing records through st.
func NewLedgerService(
	st store.Store,
	sess *session.Session,
	transactions *codec.TransactionCodec,
	goals *codec.GoalCodec,
	ids IDGenerator,
	log *logger.Logger,
) LedgerService {
	return &ledgerService{
		transactions: recordRepo[models.Transaction, models.TransactionSecrets]{store: st, codec: transactions, session: sess},
		goals:        recordRepo[models.Goal, models.GoalSecrets]{store: st, codec: goals, session: sess},
		ids:          ids,
		now:          time.Now,
		logger:       log,
	}
}

func (l *ledgerService) AddTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	now := l.now().UTC()
	tx.ID = l.ids.Generate()
	tx.CreatedAt, tx.UpdatedAt = now, now

	stored, err := l.transactions.add(ctx, tx)
	if err != nil {
		l.logger.Err(err).Str("func", "ledgerService.AddTransaction").Msg("failed to add transaction")
		return models.Transaction{}, err
	}
	return stored, nil
}

func (l *ledgerService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return l.transactions.list(ctx)
}

func (l *ledgerService) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (models.Transaction, error) {
	updated, err := l.transactions.update(ctx, id, codec.TransactionPatchOf(patch, l.now().UTC()))
	if err != nil {
		l.logger.Err(err).Str("func", "ledgerService.UpdateTransaction").Str("id", id).Msg("failed to update transaction")
		return models.Transaction{}, err
	}
	return updated, nil
}

func (l *ledgerService) DeleteTransaction(ctx context.Context, id string) error {
	return l.transactions.delete(ctx, id)
}

func (l *ledgerService) AddGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	now := l.now().UTC()
	goal.ID = l.ids.Generate()
	goal.CreatedAt, goal.UpdatedAt = now, now

	stored, err := l.goals.add(ctx, goal)
	if err != nil {
		l.logger.Err(err).Str("func", "ledgerService.AddGoal").Msg("failed to add goal")
		return models.Goal{}, err
	}
	return stored, nil
}

func (l *ledgerService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	return l.goals.list(ctx)
}

func (l *ledgerService) UpdateGoal(ctx context.Context, id string, patch models.GoalPatch) (models.Goal, error) {
	updated, err := l.goals.update(ctx, id, codec.GoalPatchOf(patch, l.now().UTC()))
	if err != nil {
		l.logger.Err(err).Str("func", "ledgerService.UpdateGoal").Str("id", id).Msg("failed to update goal")
		return models.Goal{}, err
	}
	return updated, nil
}

func (l *ledgerService) DeleteGoal(ctx context.Context, id string) error {
	return l.goals.delete(ctx, id)
}

// recordRepo runs CRUD for one record type through its codec, taking the key
// from the session before any store call.
type recordRepo[R any, S any] struct {
	store   store.Store
	codec   *codec.Codec[R, S]
	session *session.Session
}

func (r recordRepo[R, S]) add(ctx context.Context, record R) (R, error) {
	var zero R

	key, err := r.session.Key()
	if err != nil {
		return zero, err
	}

	row, err := r.codec.ToStorage(record, key)
	if err != nil {
		return zero, err
	}

	stored, err := r.store.Insert(ctx, r.codec.Table().Name, row)
	if err != nil {
		return zero, fmt.Errorf("insert into %s: %w", r.codec.Table().Name, err)
	}
	return r.codec.FromStorage(stored, key)
}

func (r recordRepo[R, S]) list(ctx context.Context) ([]R, error) {
	key, err := r.session.Key()
	if err != nil {
		return nil, err
	}

	rows, err := r.store.ReadAll(ctx, r.codec.Table().Name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.codec.Table().Name, err)
	}

	records := make([]R, 0, len(rows))
	for _, row := range rows {
		record, err := r.codec.FromStorage(row, key)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// update sends patch to the store. A patch touching sensitive fields needs the
// existing row, whose subset is opened, changed and sealed again whole.
func (r recordRepo[R, S]) update(ctx context.Context, id string, patch codec.Patch[S]) (R, error) {
	var zero R

	key, err := r.session.Key()
	if err != nil {
		return zero, err
	}

	existing := models.StorageRow{ID: id}
	if patch.Secrets != nil {
		if existing, err = r.find(ctx, id); err != nil {
			return zero, err
		}
	}

	partial, err := r.codec.MergeUpdate(existing, patch, key)
	if err != nil {
		return zero, err
	}

	stored, err := r.store.Update(ctx, r.codec.Table().Name, id, partial)
	if err != nil {
		return zero, notFound(err)
	}
	return r.codec.FromStorage(stored, key)
}

func (r recordRepo[R, S]) delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, r.codec.Table().Name, id); err != nil {
		return notFound(err)
	}
	return nil
}

func (r recordRepo[R, S]) find(ctx context.Context, id string) (models.StorageRow, error) {
	rows, err := r.store.ReadAll(ctx, r.codec.Table().Name)
	if err != nil {
		return models.StorageRow{}, fmt.Errorf("read %s: %w", r.codec.Table().Name, err)
	}
	for _, row := range rows {
		if row.ID == id {
			return row, nil
		}
	}
	return models.StorageRow{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
}

func notFound(err error) error {
	if errors.Is(err, store.ErrRowNotFound) {
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	}
	return err
}
