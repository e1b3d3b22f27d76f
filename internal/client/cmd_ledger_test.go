// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// ─────────────────────────────────────────────
// Transactions
// ─────────────────────────────────────────────

func TestTxAdd(t *testing.T) {
	h := newHarness(t, false, "")

	var got models.Transaction
	h.ledger.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx models.Transaction) (models.Transaction, error) {
			got = tx
			tx.ID = "tx-1"
			return tx, nil
		})

	require.NoError(t, h.run("tx", "add",
		"--amount", "19.99",
		"--date", "2026-05-01",
		"--category", "food",
		"--tag", "weekly", "--tag", "market",
		"--description", "groceries",
		"--notes", "cash",
	))

	assert.Equal(t, models.Transaction{
		Type:       models.TransactionExpense,
		Date:       time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		CategoryID: "food",
		Tags:       []string{"weekly", "market"},
		TransactionSecrets: models.TransactionSecrets{
			Amount:      19.99,
			Description: "groceries",
			Notes:       "cash",
		},
	}, got)
	assert.Contains(t, h.out.String(), "Added transaction tx-1")
}

func TestTxAdd_DefaultsToToday(t *testing.T) {
	h := newHarness(t, false, "")

	before := time.Now().UTC()
	h.ledger.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx models.Transaction) (models.Transaction, error) {
			assert.Equal(t, models.TransactionIncome, tx.Type)
			assert.Equal(t, before.Format(dateLayout), tx.Date.Format(dateLayout))
			return tx, nil
		})

	require.NoError(t, h.run("tx", "add", "--type", "income", "--amount", "2500"))
}

func TestTxAdd_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing amount", args: []string{"tx", "add", "--description", "x"}},
		{name: "bad date", args: []string{"tx", "add", "--amount", "1", "--date", "01/05/2026"}},
		{name: "bad amount", args: []string{"tx", "add", "--amount", "twelve"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, false, "")

			err := h.run(tt.args...)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func TestTxAdd_InvalidRecord(t *testing.T) {
	h := newHarness(t, false, "")

	h.ledger.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).
		Return(models.Transaction{}, service.ErrInvalidRecord)

	err := h.run("tx", "add", "--type", "transfer", "--amount", "1")
	assert.ErrorIs(t, err, service.ErrInvalidRecord)
}

func TestTxList(t *testing.T) {
	h := newHarness(t, false, "")

	h.ledger.EXPECT().ListTransactions(gomock.Any()).Return([]models.Transaction{
		{
			ID: "a", Type: models.TransactionExpense, Date: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			CategoryID: "food", Tags: []string{"weekly", "market"},
			TransactionSecrets: models.TransactionSecrets{Amount: 19.99, Description: "groceries"},
		},
		{
			ID: "b", Type: models.TransactionIncome, Date: time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
			TransactionSecrets: models.TransactionSecrets{Amount: 2500},
		},
	}, nil)

	require.NoError(t, h.run("tx", "ls"))

	out := h.out.String()
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "2026-05-01")
	assert.Contains(t, out, "19.99")
	assert.Contains(t, out, "2500.00")
	assert.Contains(t, out, "weekly,market")
}

func TestTxList_Empty(t *testing.T) {
	h := newHarness(t, false, "")
	h.ledger.EXPECT().ListTransactions(gomock.Any()).Return(nil, nil)

	require.NoError(t, h.run("tx", "list"))
	assert.Contains(t, h.out.String(), "No transactions yet")
}

func TestTxUpdate_OnlyChangedFields(t *testing.T) {
	h := newHarness(t, false, "")

	h.ledger.EXPECT().UpdateTransaction(gomock.Any(), "a", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, p models.TransactionPatch) (models.Transaction, error) {
			require.NotNil(t, p.Amount)
			assert.Equal(t, 5.0, *p.Amount)
			assert.Equal(t, []string{"x"}, p.Tags)
			assert.Nil(t, p.Type)
			assert.Nil(t, p.Date)
			assert.Nil(t, p.Description)
			assert.Nil(t, p.Notes)
			assert.Nil(t, p.Mood)
			return models.Transaction{ID: id}, nil
		})

	require.NoError(t, h.run("tx", "update", "a", "--amount", "5", "--tag", "x"))
	assert.Contains(t, h.out.String(), "Updated transaction a")
}

func TestTxDelete_NeedsNoKey(t *testing.T) {
	h := newHarness(t, true, "")

	h.ledger.EXPECT().DeleteTransaction(gomock.Any(), "a").Return(nil)

	require.NoError(t, h.run("tx", "rm", "a"))
	assert.Contains(t, h.out.String(), "Deleted transaction a")
}

// ─────────────────────────────────────────────
// Goals
// ─────────────────────────────────────────────

func TestGoalAdd(t *testing.T) {
	h := newHarness(t, false, "")

	deadline := time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)
	h.ledger.EXPECT().AddGoal(gomock.Any(), models.Goal{
		Name:        "new bike",
		Deadline:    &deadline,
		GoalSecrets: models.GoalSecrets{TargetAmount: 1200, CurrentAmount: 100},
	}).Return(models.Goal{ID: "g-1"}, nil)

	require.NoError(t, h.run("goal", "add", "--name", "new bike", "--target", "1200", "--current", "100", "--deadline", "2027-04-01"))
	assert.Contains(t, h.out.String(), "Added goal g-1")
}

func TestGoalList(t *testing.T) {
	h := newHarness(t, false, "")

	deadline := time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)
	h.ledger.EXPECT().ListGoals(gomock.Any()).Return([]models.Goal{
		{ID: "g-1", Name: "bike", Deadline: &deadline, GoalSecrets: models.GoalSecrets{TargetAmount: 1200, CurrentAmount: 150.5}},
		{ID: "g-2", Name: "trip", GoalSecrets: models.GoalSecrets{TargetAmount: 900}},
	}, nil)

	require.NoError(t, h.run("goal", "list"))

	out := h.out.String()
	assert.Contains(t, out, "150.50")
	assert.Contains(t, out, "1200.00")
	assert.Contains(t, out, "2027-04-01")
	assert.Contains(t, out, "trip")
}

func TestGoalUpdate(t *testing.T) {
	h := newHarness(t, false, "")

	current := 450.0
	h.ledger.EXPECT().UpdateGoal(gomock.Any(), "g-1", models.GoalPatch{CurrentAmount: &current}).
		Return(models.Goal{ID: "g-1"}, nil)

	require.NoError(t, h.run("goal", "update", "g-1", "--current", "450"))
}

func TestGoalDelete(t *testing.T) {
	h := newHarness(t, false, "")
	h.ledger.EXPECT().DeleteGoal(gomock.Any(), "g-1").Return(nil)

	require.NoError(t, h.run("goal", "delete", "g-1"))
}
