// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages shown to the user
// by the ledger CLI.
//
// All Msg* constants are human-readable strings describing the outcome of an
// operation. Keeping them in one place ensures consistent wording across
// commands. [UserMessage] picks the message for an error returned by the
// service layer.
package app

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
)

const (
	// MsgInvalidKeyFormat is shown when an imported key file does not hold
	// a valid exported key.
	MsgInvalidKeyFormat = "check your key file: it does not contain a valid key"

	// MsgDecryptionFailed is shown when stored data cannot be opened with
	// the supplied password or key.
	MsgDecryptionFailed = "wrong password or key"

	// MsgUnlockRequired is shown when an operation needs the encryption key
	// while the ledger is locked.
	MsgUnlockRequired = "unlock required: run `ledger unlock` first"

	// MsgKeyNotExtractable is shown when exporting a password-derived key.
	MsgKeyNotExtractable = "a password-derived key cannot be exported; remember your password instead"

	// MsgEmptyPassword is shown when an empty password is given.
	MsgEmptyPassword = "password must not be empty"

	// MsgInvalidRate is shown when a conversion rate is zero, negative or not
	// a number.
	MsgInvalidRate = "rate must be a positive number"

	// MsgUserChoiceRequired is shown when a currency change needs the user to
	// choose between keeping and converting amounts.
	MsgUserChoiceRequired = "records exist: choose `ledger currency keep` or `ledger currency convert`"

	// MsgSetupRequired is shown before first-run setup.
	MsgSetupRequired = "ledger is not set up: run `ledger init` first"

	// MsgAlreadySetUp is shown when init runs twice.
	MsgAlreadySetUp = "ledger is already set up"

	// MsgInvalidCurrency is shown for a currency code that is not three
	// letters.
	MsgInvalidCurrency = "currency must be a three-letter code such as USD"

	// MsgCurrencyMismatch is shown when the source currency of a change is
	// not the ledger currency.
	MsgCurrencyMismatch = "the ledger is not in that currency"

	// MsgInvalidEncryptionMode is shown for an unknown encryption mode.
	MsgInvalidEncryptionMode = "encryption mode must be none, password or random"

	// MsgWrongUnlockMethod is shown when the unlock method does not match the
	// ledger's encryption mode.
	MsgWrongUnlockMethod = "this ledger is unlocked with the other method (password or key file)"

	// MsgEncryptionAlreadyEnabled is shown when encryption is enabled twice.
	MsgEncryptionAlreadyEnabled = "encryption is already enabled"

	// MsgRecordNotFound is shown when an id does not exist.
	MsgRecordNotFound = "record not found"

	// MsgInvalidRecord is shown when a record fails validation.
	MsgInvalidRecord = "invalid record"

	// MsgPartialConvert is the format for a currency conversion that stopped
	// part way: converted, total, not converted.
	MsgPartialConvert = "%d of %d records converted; %d still hold old values and the data is now mixed. Run the same command again to finish"

	// MsgPartialEncrypt is the format for an encryption run that stopped part
	// way: encrypted, total, still clear.
	MsgPartialEncrypt = "%d of %d records encrypted; %d are still stored in clear. Run `ledger encrypt` again to finish"

	// MsgRebasePending is the format for a currency change refused because a
	// conversion is unfinished: from, to, rate, converted, then the same
	// from, to, rate for the command that finishes it.
	MsgRebasePending = "conversion %s -> %s at rate %v stopped after %d records. Finish it with `ledger currency convert %s %s --rate %v` or drop it with `ledger currency abandon`"

	// MsgSettingsCorrupted is shown when the settings file cannot be read.
	MsgSettingsCorrupted = "local settings file is corrupted"

	// MsgStoreUnavailable is shown when the record store cannot be reached.
	MsgStoreUnavailable = "record store is unavailable, try again later"

	// MsgStoreUnauthorized is shown when the REST backend rejects the API key.
	MsgStoreUnauthorized = "record store rejected the API key"

	// MsgInternalError is shown for any other failure.
	MsgInternalError = "internal error"
)

var messages = []struct {
	err error
	msg string
}{
	{crypto.ErrInvalidKeyFormat, MsgInvalidKeyFormat},
	{crypto.ErrDecryptionFailed, MsgDecryptionFailed},
	{crypto.ErrEncryptionKeyRequired, MsgUnlockRequired},
	{crypto.ErrKeyNotExtractable, MsgKeyNotExtractable},
	{crypto.ErrEmptyPassword, MsgEmptyPassword},
	{service.ErrInvalidRate, MsgInvalidRate},
	{service.ErrUserChoiceRequired, MsgUserChoiceRequired},
	{service.ErrSetupRequired, MsgSetupRequired},
	{service.ErrAlreadySetUp, MsgAlreadySetUp},
	{service.ErrInvalidCurrency, MsgInvalidCurrency},
	{service.ErrCurrencyMismatch, MsgCurrencyMismatch},
	{service.ErrInvalidEncryptionMode, MsgInvalidEncryptionMode},
	{service.ErrWrongUnlockMethod, MsgWrongUnlockMethod},
	{service.ErrEncryptionAlreadyEnabled, MsgEncryptionAlreadyEnabled},
	{service.ErrRecordNotFound, MsgRecordNotFound},
	{store.ErrSettingsCorrupted, MsgSettingsCorrupted},
	{adapter.ErrUnauthorized, MsgStoreUnauthorized},
	{adapter.ErrForbidden, MsgStoreUnauthorized},
	{adapter.ErrServiceUnavailable, MsgStoreUnavailable},
	{adapter.ErrBadGateway, MsgStoreUnavailable},
	{adapter.ErrTooManyRequests, MsgStoreUnavailable},
}

// UserMessage returns the text to show for err. Partial rewrites report
// their counts, an unfinished conversion names the way out, and validation errors are shown as they are.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var partial *service.PartialRewriteError
	if errors.As(err, &partial) {
		format := MsgPartialConvert
		if partial.Op == service.RewriteEncrypt {
			format = MsgPartialEncrypt
		}
		return fmt.Sprintf(format, partial.Succeeded+partial.Skipped, partial.Total, partial.NotSucceeded())
	}

	var pending *service.RebasePendingError
	if errors.As(err, &pending) {
		p := pending.Pending
		return fmt.Sprintf(MsgRebasePending, p.From, p.To, p.Rate, len(p.Done), p.From, p.To, p.Rate)
	}

	if errors.Is(err, service.ErrInvalidRecord) {
		return err.Error()
	}

	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return MsgInternalError
}
