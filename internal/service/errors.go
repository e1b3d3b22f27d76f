// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

var (
	// ErrInvalidRate is returned by Convert before any store call when the
	// rate is not a finite number greater than zero.
	ErrInvalidRate = errors.New("invalid conversion rate")

	// ErrPartialRewrite is matched by [*PartialRewriteError].
	ErrPartialRewrite = errors.New("partial rewrite")

	// ErrRebasePending is matched by [*RebasePendingError].
	ErrRebasePending = errors.New("unfinished currency conversion")

	// ErrUserChoiceRequired is returned by ChangeCurrency when records exist
	// and the user must choose between keeping and converting amounts.
	ErrUserChoiceRequired = errors.New("user choice required")

	// ErrSetupRequired is returned when the ledger has not been set up yet.
	ErrSetupRequired = errors.New("setup required")

	// ErrAlreadySetUp is returned by Setup on a ledger that was set up.
	ErrAlreadySetUp = errors.New("ledger is already set up")

	// ErrInvalidCurrency is returned for codes that are not three letters.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrCurrencyMismatch is returned when the source currency of a rebase
	// is not the ledger's active currency.
	ErrCurrencyMismatch = errors.New("currency does not match the ledger")

	// ErrInvalidEncryptionMode is returned for an unknown mode.
	ErrInvalidEncryptionMode = errors.New("invalid encryption mode")

	// ErrWrongUnlockMethod is returned when unlocking a password ledger with
	// a key file or the other way round.
	ErrWrongUnlockMethod = errors.New("wrong unlock method for this ledger")

	// ErrEncryptionAlreadyEnabled is returned by EnableEncryption when the
	// ledger is already encrypted.
	ErrEncryptionAlreadyEnabled = errors.New("encryption is already enabled")

	// ErrRecordNotFound is returned when an update or delete targets an
	// unknown id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidRecord is returned for a record that cannot be stored as
	// given, such as a transaction of unknown type or a goal without a name.
	ErrInvalidRecord = errors.New("invalid record")
)

// RewriteOp names the operation behind a batch rewrite.
type RewriteOp string

const (
	// RewriteConvert is a currency conversion.
	RewriteConvert RewriteOp = "convert"
	// RewriteEncrypt is the encryption of clear rows.
	RewriteEncrypt RewriteOp = "encrypt"
)

// PartialRewriteError reports a batch rewrite that stopped part way. Records
// already rewritten stay rewritten; there is no rollback.
type PartialRewriteError struct {
	Op RewriteOp

	Total        int
	Succeeded    int
	Failed       int
	NotAttempted int
	Skipped      int

	// Cause is the first record failure.
	Cause error
}

func (e *PartialRewriteError) Error() string {
	return fmt.Sprintf("%s: %d of %d records rewritten, %d failed, %d not attempted: %v",
		e.Op, e.Succeeded+e.Skipped, e.Total, e.Failed, e.NotAttempted, e.Cause)
}

// Is makes errors.Is(err, ErrPartialRewrite) hold.
func (e *PartialRewriteError) Is(target error) bool {
	return target == ErrPartialRewrite
}

func (e *PartialRewriteError) Unwrap() error {
	return e.Cause
}

// NotSucceeded is the number of records still carrying old values.
func (e *PartialRewriteError) NotSucceeded() int {
	return e.Failed + e.NotAttempted
}

// RebasePendingError is returned when a currency change would start over a
// conversion that stopped part way. Rows listed in Pending.Done already hold
// converted amounts.
type RebasePendingError struct {
	Pending models.RebaseCheckpoint
}

func (e *RebasePendingError) Error() string {
	return fmt.Sprintf("conversion %s -> %s at rate %v stopped after %d records",
		e.Pending.From, e.Pending.To, e.Pending.Rate, len(e.Pending.Done))
}

// Is makes errors.Is(err, ErrRebasePending) hold.
func (e *RebasePendingError) Is(target error) bool {
	return target == ErrRebasePending
}
