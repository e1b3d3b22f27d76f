// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidKeyFormat is returned when imported key text does not decode
	// to exactly 32 bytes.
	ErrInvalidKeyFormat = errors.New("invalid key format")

	// ErrDecryptionFailed is returned for any decrypt failure: wrong key,
	// corrupted or tampered ciphertext or nonce, undecodable fields. The
	// cause is deliberately not distinguished.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncryptionKeyRequired is returned when an operation on sensitive
	// fields runs while the ledger is encrypted but locked.
	ErrEncryptionKeyRequired = errors.New("encryption key required")

	// ErrKeyNotExtractable is returned when exporting a password-derived key.
	ErrKeyNotExtractable = errors.New("key is not extractable")

	// ErrEmptyPassword is returned when deriving from an empty password.
	ErrEmptyPassword = errors.New("password is empty")
)
