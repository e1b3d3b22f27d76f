// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyOrigin tells how a data key was obtained.
type KeyOrigin string

const (
	// KeyOriginPassword marks a key stretched from a user password and salt.
	KeyOriginPassword KeyOrigin = "password"
	// KeyOriginRandom marks a key generated from the CSPRNG or imported from
	// its exported text form.
	KeyOriginRandom KeyOrigin = "random"
)

// EncryptionMode is the persisted encryption setting of a ledger.
type EncryptionMode string

const (
	EncryptionModeNone     EncryptionMode = "none"
	EncryptionModePassword EncryptionMode = "password"
	EncryptionModeRandom   EncryptionMode = "random"
)

// Valid reports whether m is one of the known modes.
func (m EncryptionMode) Valid() bool {
	switch m {
	case EncryptionModeNone, EncryptionModePassword, EncryptionModeRandom:
		return true
	}
	return false
}
