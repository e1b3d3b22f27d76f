// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds all client-side cryptography of the ledger in the
// zero-knowledge scheme. It knows nothing about the network, the store or
// the records it protects.
//
// Scheme:
//
//	Key, Salt = DeriveFromPassword(password, salt)   (password mode)
//	Key       = GenerateRandom() / ImportFromText()  (random mode)
//	Envelope  = Encrypt(sensitiveFields, Key)
//	Fields    = Decrypt(Envelope, Key)
package crypto

import "github.com/MKhiriev/go-ledger-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService derives, generates, exports and uses the ledger data key.
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret and is
	// kept in local settings.
	GenerateSalt() ([]byte, error)

	// DeriveFromPassword stretches password with PBKDF2-HMAC-SHA256 into a
	// 256-bit key. A nil salt is replaced by a fresh one; the salt actually
	// used is returned. The same (password, salt) always gives the same key.
	// The key is not extractable.
	DeriveFromPassword(password string, salt []byte) (*KeyMaterial, []byte, error)

	// GenerateRandom returns a fresh 256-bit extractable key.
	GenerateRandom() (*KeyMaterial, error)

	// ExportToText returns the base64 form of an extractable key so the user
	// can save it.
	ExportToText(key *KeyMaterial) (string, error)

	// ImportFromText is the inverse of ExportToText.
	ImportFromText(text string) (*KeyMaterial, error)

	// Encrypt serialises plaintext to JSON and seals it with AES-256-GCM
	// under a fresh 12-byte nonce.
	Encrypt(plaintext any, key *KeyMaterial) (models.EncryptedEnvelope, error)

	// Decrypt opens envelope and unmarshals the JSON into target (a non-nil
	// pointer). Every failure is reported as ErrDecryptionFailed.
	Decrypt(envelope models.EncryptedEnvelope, key *KeyMaterial, target any) error
}
