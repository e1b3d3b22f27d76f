// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Goal is a savings target.
type Goal struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	GoalSecrets
}

// GoalSecrets is the sensitive subset of a [Goal].
type GoalSecrets struct {
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Description   string  `json:"description,omitempty"`
}

// ScaleAmounts replaces both goal amounts with fn(amount).
func (s *GoalSecrets) ScaleAmounts(fn func(float64) float64) {
	s.TargetAmount = fn(s.TargetAmount)
	s.CurrentAmount = fn(s.CurrentAmount)
}

// GoalPatch describes a partial update of a goal.
type GoalPatch struct {
	Name          *string
	Deadline      *time.Time
	TargetAmount  *float64
	CurrentAmount *float64
	Description   *string
}

// TouchesSecrets reports whether the patch changes any sensitive field.
func (p GoalPatch) TouchesSecrets() bool {
	return p.TargetAmount != nil || p.CurrentAmount != nil || p.Description != nil
}
