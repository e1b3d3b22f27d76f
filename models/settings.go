// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LocalSettings is the persisted, non-sensitive local configuration of a
// ledger. It never contains key material.
type LocalSettings struct {
	// Currency is the active currency code. Every stored amount is
	// implicitly denominated in it.
	Currency string `json:"currency"`

	// Encryption describes whether sensitive fields are encrypted and how
	// the key is obtained.
	Encryption EncryptionSettings `json:"encryption"`

	// SetupCompleted marks that initial setup finished.
	SetupCompleted bool `json:"setup_completed"`

	// PendingRebase is set while a currency conversion is incomplete.
	PendingRebase *RebaseCheckpoint `json:"pending_rebase,omitempty"`
}

// EncryptionSettings is the non-secret part of the encryption setup.
type EncryptionSettings struct {
	Enabled bool           `json:"enabled"`
	Mode    EncryptionMode `json:"mode"`

	// Salt is the base64 password-mode salt. It is not secret, but losing it
	// makes a password-derived key unrecoverable.
	Salt string `json:"salt,omitempty"`
}

// RebaseCheckpoint records progress of a currency conversion so that a retry
// resumes instead of converting the same records twice.
type RebaseCheckpoint struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Rate      float64   `json:"rate"`
	StartedAt time.Time `json:"started_at"`

	// Done holds RecordKey values of rows already rewritten.
	Done []string `json:"done"`
}

// Matches reports whether the checkpoint belongs to the same conversion.
func (c *RebaseCheckpoint) Matches(from, to string, rate float64) bool {
	return c != nil && c.From == from && c.To == to && c.Rate == rate
}

// RecordKey identifies a row across tables.
func RecordKey(table, id string) string {
	return table + "/" + id
}
