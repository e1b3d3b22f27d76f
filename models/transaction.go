// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is the decrypted in-memory projection of one ledger entry.
// The record itself belongs to the store; this value is for display and
// editing only.
type Transaction struct {
	ID         string          `json:"id"`
	Type       TransactionType `json:"type"`
	Date       time.Time       `json:"date"`
	CategoryID string          `json:"category_id,omitempty"`
	Mood       string          `json:"mood,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	TransactionSecrets
}

// TransactionSecrets is the sensitive subset of a [Transaction]. It is
// encrypted as one JSON object or stored in clear as a whole, never split.
// The JSON names double as the clear column names.
type TransactionSecrets struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// ScaleAmounts replaces every currency amount with fn(amount).
func (s *TransactionSecrets) ScaleAmounts(fn func(float64) float64) {
	s.Amount = fn(s.Amount)
}

// TransactionPatch describes a partial update of a transaction. Nil fields
// are left untouched.
type TransactionPatch struct {
	Type        *TransactionType
	Date        *time.Time
	CategoryID  *string
	Mood        *string
	Tags        []string
	Amount      *float64
	Description *string
	Notes       *string
}

// TouchesSecrets reports whether the patch changes any sensitive field.
func (p TransactionPatch) TouchesSecrets() bool {
	return p.Amount != nil || p.Description != nil || p.Notes != nil
}
