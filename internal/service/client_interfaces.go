// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=servicemock/client_interfaces_mock.go -package=servicemock

// VaultService owns setup, unlocking and the encryption mode of the ledger.
type VaultService interface {
	// Setup performs first-run configuration: currency and encryption mode.
	// For random mode it returns the exported key text, which the user must
	// save; it is never stored. The session is left unlocked.
	Setup(ctx context.Context, req SetupRequest) (exportedKey string, err error)

	// UnlockWithPassword derives the key from password and the stored salt.
	// If an encrypted record exists it is opened as a check; a wrong
	// password then fails with crypto.ErrDecryptionFailed and the session
	// stays locked.
	UnlockWithPassword(ctx context.Context, password string) error

	// UnlockWithKey imports a previously exported key and unlocks with it,
	// with the same check as UnlockWithPassword.
	UnlockWithKey(ctx context.Context, keyText string) error

	// Lock drops the key from memory.
	Lock()

	// Status summarises the ledger for display.
	Status(ctx context.Context) (VaultStatus, error)

	// ExportKey returns the text form of the unlocked random-mode key.
	// Password-derived keys cannot be exported.
	ExportKey(ctx context.Context) (string, error)

	// EnableEncryption switches a clear ledger to password or random mode
	// and rewrites every clear record encrypted. Settings (and the salt)
	// are saved before any record is rewritten. For random mode the
	// exported key text is returned. Called again on an encrypted, unlocked
	// ledger it finishes a rewrite that stopped part way.
	EnableEncryption(ctx context.Context, mode models.EncryptionMode, password string) (exportedKey string, report models.RebaseReport, err error)
}

// LedgerService is CRUD over transactions and goals. Every operation that
// returns or writes sensitive fields fails fast with
// crypto.ErrEncryptionKeyRequired while the session is locked.
type LedgerService interface {
	AddTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	AddGoal(ctx context.Context, goal models.Goal) (models.Goal, error)
	ListGoals(ctx context.Context) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, id string, patch models.GoalPatch) (models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

// CurrencyService changes the ledger currency.
type CurrencyService interface {
	// Decide counts records in every amount-bearing table.
	Decide(ctx context.Context) (models.RebaseDecision, error)

	// DecideFor is the pure form of Decide.
	DecideFor(recordCount int) models.RebaseDecision

	// ChangeCurrency applies newCode when there are no records and returns
	// ErrUserChoiceRequired otherwise, changing nothing.
	ChangeCurrency(ctx context.Context, newCode string) error

	// KeepAsIs relabels the ledger without touching any record. It returns
	// a *RebasePendingError while an unfinished Convert exists.
	KeepAsIs(ctx context.Context, oldCode, newCode string) error

	// Convert multiplies every amount by rate, rounds to 2 decimals and
	// relabels the ledger. On a partial failure it returns a
	// *PartialRewriteError and the label stays at oldCode. A retry with the
	// same currencies and rate resumes; any other Convert returns a
	// *RebasePendingError without touching the store.
	Convert(ctx context.Context, oldCode, newCode string, rate float64) (models.RebaseReport, error)

	// PendingRebase returns the checkpoint of an unfinished Convert, or nil.
	PendingRebase(ctx context.Context) (*models.RebaseCheckpoint, error)

	// AbandonRebase drops the checkpoint of an unfinished Convert. Rows it
	// converted keep their new amounts and the label stays at the source
	// currency. It returns the dropped checkpoint, or nil when none existed.
	AbandonRebase(ctx context.Context) (*models.RebaseCheckpoint, error)
}

// AutoLockJob locks an idle unlocked session in the background.
type AutoLockJob interface {
	// Start runs the job until ctx is cancelled or Stop is called. A
	// non-positive idle disables locking.
	Start(ctx context.Context, idle time.Duration)
	// Stop stops the job and waits for it to exit.
	Stop()
}

// IDGenerator produces record identifiers.
type IDGenerator interface {
	Generate() string
}
