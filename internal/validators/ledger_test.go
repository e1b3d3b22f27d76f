// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validTransaction() models.Transaction {
	return models.Transaction{
		Type: models.TransactionExpense,
		Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Tags: []string{"food"},
		TransactionSecrets: models.TransactionSecrets{
			Amount:      19.99,
			Description: "lunch",
		},
	}
}

func validGoal() models.Goal {
	return models.Goal{
		Name: "bike",
		GoalSecrets: models.GoalSecrets{
			TargetAmount:  500,
			CurrentAmount: 120,
		},
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewLedgerValidator(t *testing.T) {
	v := NewLedgerValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewLedgerValidator()
	ctx := context.Background()

	tx := validTransaction()
	goal := validGoal()

	tests := []struct {
		name string
		obj  any
		want error
	}{
		{"transaction value", tx, nil},
		{"transaction pointer", &tx, nil},
		{"transaction patch", models.TransactionPatch{Amount: ptr(1.0)}, nil},
		{"transaction patch pointer", &models.TransactionPatch{Notes: ptr("x")}, nil},
		{"goal value", goal, nil},
		{"goal pointer", &goal, nil},
		{"goal patch", models.GoalPatch{Name: ptr("car")}, nil},
		{"goal patch pointer", &models.GoalPatch{CurrentAmount: ptr(10.0)}, nil},
		{"unsupported", "string", ErrUnsupportedType},
		{"nil", nil, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// Transaction
// ---------------------------------------------------------------------------

func TestValidate_Transaction(t *testing.T) {
	v := NewLedgerValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Transaction)
		want   error
	}{
		{"valid", func(*models.Transaction) {}, nil},
		{"income", func(tx *models.Transaction) { tx.Type = models.TransactionIncome }, nil},
		{"unknown type", func(tx *models.Transaction) { tx.Type = "transfer" }, ErrInvalidTransactionType},
		{"empty type", func(tx *models.Transaction) { tx.Type = "" }, ErrInvalidTransactionType},
		{"zero date", func(tx *models.Transaction) { tx.Date = time.Time{} }, ErrEmptyDate},
		{"NaN amount", func(tx *models.Transaction) { tx.Amount = math.NaN() }, ErrInvalidAmount},
		{"infinite amount", func(tx *models.Transaction) { tx.Amount = math.Inf(-1) }, ErrInvalidAmount},
		{"negative amount allowed", func(tx *models.Transaction) { tx.Amount = -3 }, nil},
		{"blank tag", func(tx *models.Transaction) { tx.Tags = []string{"ok", " "} }, ErrEmptyTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := v.Validate(ctx, tx)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_Transaction_FieldScoping(t *testing.T) {
	v := NewLedgerValidator()
	ctx := context.Background()

	tx := validTransaction()
	tx.Type = "bogus"

	assert.NoError(t, v.Validate(ctx, tx, FieldDate, FieldAmount))
	assert.ErrorIs(t, v.Validate(ctx, tx, FieldType), ErrInvalidTransactionType)
	assert.ErrorIs(t, v.Validate(ctx, tx, "unknown"), ErrUnknownField)
}

func TestValidate_TransactionPatch(t *testing.T) {
	v := NewLedgerValidator()
	ctx := context.Background()

	zero := time.Time{}
	bad := models.TransactionType("bogus")

	tests := []struct {
		name  string
		patch models.TransactionPatch
		want  error
	}{
		{"empty patch", models.TransactionPatch{}, ErrNoFieldsToUpdate},
		{"only mood", models.TransactionPatch{Mood: ptr("happy")}, nil},
		{"empty tags slice counts as change", models.TransactionPatch{Tags: []string{}}, nil},
		{"bad type", models.TransactionPatch{Type: &bad}, ErrInvalidTransactionType},
		{"zero date", models.TransactionPatch{Date: &zero}, ErrEmptyDate},
		{"NaN amount", models.TransactionPatch{Amount: ptr(math.NaN())}, ErrInvalidAmount},
		{"blank tag", models.TransactionPatch{Tags: []string{""}}, ErrEmptyTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.patch)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// Goal
// ---------------------------------------------------------------------------

func TestValidate_Goal(t *testing.T) {
	v := NewLedgerValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Goal)
		want   error
	}{
		{"valid", func(*models.Goal) {}, nil},
		{"blank name", func(g *models.Goal) { g.Name = "  " }, ErrEmptyName},
		{"negative target", func(g *models.Goal) { g.TargetAmount = -1 }, ErrNegativeAmount},
		{"negative current", func(g *models.Goal) { g.CurrentAmount = -0.01 }, ErrNegativeAmount},
		{"infinite target", func(g *models.Goal) { g.TargetAmount = math.Inf(1) }, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGoal()
			tt.mutate(&g)

			err := v.Validate(ctx, g)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_GoalPatch(t *testing.T) {
	v := NewLedgerValidator()
	ctx := context.Background()

	tests := []struct {
		name  string
		patch models.GoalPatch
		want  error
	}{
		{"empty patch", models.GoalPatch{}, ErrNoFieldsToUpdate},
		{"description only", models.GoalPatch{Description: ptr("")}, nil},
		{"blank name", models.GoalPatch{Name: ptr("")}, ErrEmptyName},
		{"negative target", models.GoalPatch{TargetAmount: ptr(-5.0)}, ErrNegativeAmount},
		{"NaN current", models.GoalPatch{CurrentAmount: ptr(math.NaN())}, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.patch)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
