// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// LedgerServiceWrapper decorates a LedgerService with extra behaviour.
type LedgerServiceWrapper interface {
	Wrap(LedgerService) LedgerService
}

// LedgerValidationService rejects invalid records before the wrapped service
// encrypts or stores them.
type LedgerValidationService struct {
	inner     LedgerService
	validator validators.Validator
}

func NewLedgerValidationService() LedgerServiceWrapper {
	return &LedgerValidationService{
		validator: validators.NewLedgerValidator(),
	}
}

func (v *LedgerValidationService) AddTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if err := v.validator.Validate(ctx, tx); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return v.inner.AddTransaction(ctx, tx)
}

func (v *LedgerValidationService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return v.inner.ListTransactions(ctx)
}

func (v *LedgerValidationService) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (models.Transaction, error) {
	if id == "" {
		return models.Transaction{}, fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return v.inner.UpdateTransaction(ctx, id, patch)
}

func (v *LedgerValidationService) DeleteTransaction(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}
	return v.inner.DeleteTransaction(ctx, id)
}

func (v *LedgerValidationService) AddGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	if err := v.validator.Validate(ctx, goal); err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return v.inner.AddGoal(ctx, goal)
}

func (v *LedgerValidationService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	return v.inner.ListGoals(ctx)
}

func (v *LedgerValidationService) UpdateGoal(ctx context.Context, id string, patch models.GoalPatch) (models.Goal, error) {
	if id == "" {
		return models.Goal{}, fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return v.inner.UpdateGoal(ctx, id, patch)
}

func (v *LedgerValidationService) DeleteGoal(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}
	return v.inner.DeleteGoal(ctx, id)
}

func (v *LedgerValidationService) Wrap(inner LedgerService) LedgerService {
	v.inner = inner
	return v
}
