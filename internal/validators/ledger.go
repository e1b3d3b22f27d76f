// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldType targets the income/expense kind of a transaction.
	FieldType = "type"

	// FieldDate targets the calendar date of a transaction.
	FieldDate = "date"

	// FieldAmount targets every currency amount of a record.
	FieldAmount = "amount"

	// FieldTags targets the free-form tags of a transaction.
	FieldTags = "tags"

	// FieldName targets the name of a goal.
	FieldName = "name"

	// FieldPatch checks that an update changes at least one field.
	FieldPatch = "patch"
)

var allowedTransactionTypes = []models.TransactionType{
	models.TransactionIncome,
	models.TransactionExpense,
}

// LedgerValidator implements [Validator] for transactions, goals and their
// patches, as values or pointers.
type LedgerValidator struct {
}

// NewLedgerValidator returns a [LedgerValidator] as a [Validator].
func NewLedgerValidator() Validator {
	return &LedgerValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields every rule
// of the type is checked.
func (v *LedgerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Transaction:
		return v.validateTransaction(ctx, value, fields...)
	case *models.Transaction:
		return v.validateTransaction(ctx, *value, fields...)

	case models.TransactionPatch:
		return v.validateTransactionPatch(ctx, value, fields...)
	case *models.TransactionPatch:
		return v.validateTransactionPatch(ctx, *value, fields...)

	case models.Goal:
		return v.validateGoal(ctx, value, fields...)
	case *models.Goal:
		return v.validateGoal(ctx, *value, fields...)

	case models.GoalPatch:
		return v.validateGoalPatch(ctx, value, fields...)
	case *models.GoalPatch:
		return v.validateGoalPatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LedgerValidator) validateTransaction(_ context.Context, tx models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldDate, FieldAmount, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !isValidTransactionType(tx.Type) {
				return ErrInvalidTransactionType
			}
		case FieldDate:
			if tx.Date.IsZero() {
				return ErrEmptyDate
			}
		case FieldAmount:
			if !isFinite(tx.Amount) {
				return ErrInvalidAmount
			}
		case FieldTags:
			if err := validateTags(tx.Tags); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateTransactionPatch(_ context.Context, p models.TransactionPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatch, FieldType, FieldDate, FieldAmount, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldPatch:
			if isEmptyTransactionPatch(p) {
				return ErrNoFieldsToUpdate
			}
		case FieldType:
			if p.Type != nil && !isValidTransactionType(*p.Type) {
				return ErrInvalidTransactionType
			}
		case FieldDate:
			if p.Date != nil && p.Date.IsZero() {
				return ErrEmptyDate
			}
		case FieldAmount:
			if p.Amount != nil && !isFinite(*p.Amount) {
				return ErrInvalidAmount
			}
		case FieldTags:
			if err := validateTags(p.Tags); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateGoal(_ context.Context, goal models.Goal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(goal.Name) == "" {
				return ErrEmptyName
			}
		case FieldAmount:
			if err := validateGoalAmount(&goal.TargetAmount); err != nil {
				return err
			}
			if err := validateGoalAmount(&goal.CurrentAmount); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateGoalPatch(_ context.Context, p models.GoalPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatch, FieldName, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldPatch:
			if p == (models.GoalPatch{}) {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
				return ErrEmptyName
			}
		case FieldAmount:
			if err := validateGoalAmount(p.TargetAmount); err != nil {
				return err
			}
			if err := validateGoalAmount(p.CurrentAmount); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidTransactionType(t models.TransactionType) bool {
	for _, allowed := range allowedTransactionTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

func isEmptyTransactionPatch(p models.TransactionPatch) bool {
	return p.Type == nil && p.Date == nil && p.CategoryID == nil && p.Mood == nil &&
		p.Tags == nil && !p.TouchesSecrets()
}

func validateTags(tags []string) error {
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return ErrEmptyTag
		}
	}
	return nil
}

// validateGoalAmount accepts a nil amount, which means "not set".
func validateGoalAmount(amount *float64) error {
	if amount == nil {
		return nil
	}
	if !isFinite(*amount) {
		return ErrInvalidAmount
	}
	if *amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
