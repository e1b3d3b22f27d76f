// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUsage marks errors caused by the command line itself: bad flag
	// values, dates or argument counts. Its text is shown as is.
	ErrUsage = errors.New("usage error")

	// ErrBootstrap wraps failures to load the configuration or open the
	// stores.
	ErrBootstrap = errors.New("cannot open the ledger")

	// ErrKeyFileRequired is returned when a random-key ledger must be
	// unlocked and no --key-file was given.
	ErrKeyFileRequired = errors.New("key file required")

	// ErrPasswordMismatch is returned when the repeated password differs.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrUnterminatedQuote is returned by the shell for a line with an open
	// quote.
	ErrUnterminatedQuote = errors.New("unterminated quote")
)
