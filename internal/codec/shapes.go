// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// DateLayout is the storage layout of calendar dates.
const DateLayout = time.DateOnly

type (
	// TransactionCodec converts transactions.
	TransactionCodec = Codec[models.Transaction, models.TransactionSecrets]
	// GoalCodec converts goals.
	GoalCodec = Codec[models.Goal, models.GoalSecrets]
)

// NewTransactionCodec returns the codec for the transactions table.
func NewTransactionCodec(keychain crypto.KeyChainService) *TransactionCodec {
	return New[models.Transaction, models.TransactionSecrets](TransactionShape{}, keychain)
}

// NewGoalCodec returns the codec for the goals table.
func NewGoalCodec(keychain crypto.KeyChainService) *GoalCodec {
	return New[models.Goal, models.GoalSecrets](GoalShape{}, keychain)
}

// TransactionShape is the [Shape] of [models.Transaction].
type TransactionShape struct{}

func (TransactionShape) Table() models.Table { return models.TransactionsTable }

func (TransactionShape) Split(t models.Transaction) (string, map[string]any, models.TransactionSecrets) {
	columns := map[string]any{
		"type":        string(t.Type),
		"date":        t.Date.Format(DateLayout),
		"category_id": nullableString(t.CategoryID),
		"mood":        nullableString(t.Mood),
		"tags":        encodeTags(t.Tags),
		"created_at":  formatTimestamp(t.CreatedAt),
		"updated_at":  formatTimestamp(t.UpdatedAt),
	}
	return t.ID, columns, t.TransactionSecrets
}

func (TransactionShape) Assemble(id string, columns map[string]any, secrets models.TransactionSecrets) (models.Transaction, error) {
	t := models.Transaction{
		ID:                 id,
		Type:               models.TransactionType(columnString(columns, "type")),
		CategoryID:         columnString(columns, "category_id"),
		Mood:               columnString(columns, "mood"),
		TransactionSecrets: secrets,
	}

	var err error
	if t.Date, err = parseDate(columnString(columns, "date")); err != nil {
		return models.Transaction{}, err
	}
	if t.Tags, err = decodeTags(columnString(columns, "tags")); err != nil {
		return models.Transaction{}, err
	}
	if t.CreatedAt, err = parseTimestamp(columnString(columns, "created_at")); err != nil {
		return models.Transaction{}, err
	}
	if t.UpdatedAt, err = parseTimestamp(columnString(columns, "updated_at")); err != nil {
		return models.Transaction{}, err
	}

	return t, nil
}

// TransactionPatchOf converts a user-level patch into a codec patch stamped
// with now.
func TransactionPatchOf(p models.TransactionPatch, now time.Time) Patch[models.TransactionSecrets] {
	columns := map[string]any{"updated_at": formatTimestamp(now)}
	if p.Type != nil {
		columns["type"] = string(*p.Type)
	}
	if p.Date != nil {
		columns["date"] = p.Date.Format(DateLayout)
	}
	if p.CategoryID != nil {
		columns["category_id"] = nullableString(*p.CategoryID)
	}
	if p.Mood != nil {
		columns["mood"] = nullableString(*p.Mood)
	}
	if p.Tags != nil {
		columns["tags"] = encodeTags(p.Tags)
	}

	patch := Patch[models.TransactionSecrets]{Columns: columns}
	if p.TouchesSecrets() {
		patch.Secrets = func(s *models.TransactionSecrets) {
			if p.Amount != nil {
				s.Amount = *p.Amount
			}
			if p.Description != nil {
				s.Description = *p.Description
			}
			if p.Notes != nil {
				s.Notes = *p.Notes
			}
		}
	}
	return patch
}

// GoalShape is the [Shape] of [models.Goal].
type GoalShape struct{}

func (GoalShape) Table() models.Table { return models.GoalsTable }

func (GoalShape) Split(g models.Goal) (string, map[string]any, models.GoalSecrets) {
	columns := map[string]any{
		"name":       g.Name,
		"deadline":   nil,
		"created_at": formatTimestamp(g.CreatedAt),
		"updated_at": formatTimestamp(g.UpdatedAt),
	}
	if g.Deadline != nil {
		columns["deadline"] = g.Deadline.Format(DateLayout)
	}
	return g.ID, columns, g.GoalSecrets
}

func (GoalShape) Assemble(id string, columns map[string]any, secrets models.GoalSecrets) (models.Goal, error) {
	g := models.Goal{
		ID:          id,
		Name:        columnString(columns, "name"),
		GoalSecrets: secrets,
	}

	if raw := columnString(columns, "deadline"); raw != "" {
		deadline, err := parseDate(raw)
		if err != nil {
			return models.Goal{}, err
		}
		g.Deadline = &deadline
	}

	var err error
	if g.CreatedAt, err = parseTimestamp(columnString(columns, "created_at")); err != nil {
		return models.Goal{}, err
	}
	if g.UpdatedAt, err = parseTimestamp(columnString(columns, "updated_at")); err != nil {
		return models.Goal{}, err
	}

	return g, nil
}

// GoalPatchOf converts a user-level goal patch into a codec patch.
func GoalPatchOf(p models.GoalPatch, now time.Time) Patch[models.GoalSecrets] {
	columns := map[string]any{"updated_at": formatTimestamp(now)}
	if p.Name != nil {
		columns["name"] = *p.Name
	}
	if p.Deadline != nil {
		columns["deadline"] = p.Deadline.Format(DateLayout)
	}

	patch := Patch[models.GoalSecrets]{Columns: columns}
	if p.TouchesSecrets() {
		patch.Secrets = func(s *models.GoalSecrets) {
			if p.TargetAmount != nil {
				s.TargetAmount = *p.TargetAmount
			}
			if p.CurrentAmount != nil {
				s.CurrentAmount = *p.CurrentAmount
			}
			if p.Description != nil {
				s.Description = *p.Description
			}
		}
	}
	return patch
}

// columnString reads a text column regardless of how the driver returned it.
func columnString(columns map[string]any, name string) string {
	switch v := columns[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(v)
	}
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func encodeTags(tags []string) any {
	if len(tags) == 0 {
		return nil
	}
	raw, _ := json.Marshal(tags)
	return string(raw)
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}

// Touched returns a column set that only bumps updated_at. Both tables
// carry the column.
func Touched(now time.Time) map[string]any {
	return map[string]any{"updated_at": formatTimestamp(now)}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	return t, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	// PostgreSQL DATE columns come back as full timestamps.
	if len(raw) > len(DateLayout) {
		raw = raw[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return t, nil
}
