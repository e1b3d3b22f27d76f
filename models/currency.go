// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RebaseDecision is the outcome of asking whether a currency change needs a
// user choice.
type RebaseDecision int

const (
	// DecisionImmediate means there is no financial history; the new code
	// is applied right away.
	DecisionImmediate RebaseDecision = iota
	// DecisionNeedsUserChoice means existing records force a choice between
	// keeping amounts as they are and converting them.
	DecisionNeedsUserChoice
)

func (d RebaseDecision) String() string {
	switch d {
	case DecisionImmediate:
		return "immediate"
	case DecisionNeedsUserChoice:
		return "needs_user_choice"
	}
	return "unknown"
}

// RebaseReport summarises one convert run.
type RebaseReport struct {
	From string
	To   string
	Rate float64

	// Total is the number of records fixed at the start of the run,
	// including ones skipped because a previous run already converted them.
	Total        int
	Succeeded    int
	Skipped      int
	Failed       int
	NotAttempted int
}
