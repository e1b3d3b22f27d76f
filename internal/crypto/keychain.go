// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

const (
	// DefaultIterations is the PBKDF2 iteration count. It is fixed and not
	// stored with the salt.
	DefaultIterations = 100_000

	// SaltSize is the password-mode salt length in bytes.
	SaltSize = 16
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	iterations int
	random     io.Reader
}

// NewKeyChainService constructs a [KeyChainService] with PBKDF2-HMAC-SHA256
// at [DefaultIterations] and the OS CSPRNG.
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		iterations: DefaultIterations,
		random:     rand.Reader,
	}
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveFromPassword implements [KeyChainService].
func (k *keyChainService) DeriveFromPassword(password string, salt []byte) (*KeyMaterial, []byte, error) {
	if password == "" {
		return nil, nil, ErrEmptyPassword
	}

	if salt == nil {
		var err error
		if salt, err = k.GenerateSalt(); err != nil {
			return nil, nil, err
		}
	}

	raw := pbkdf2.Key([]byte(password), salt, k.iterations, KeySize, sha256.New)
	return newKeyMaterial(raw, models.KeyOriginPassword, false), salt, nil
}

// GenerateRandom implements [KeyChainService]. It reads 32 bytes from the
// CSPRNG.
func (k *keyChainService) GenerateRandom() (*KeyMaterial, error) {
	raw := make([]byte, KeySize)
	if _, err := io.ReadFull(k.random, raw); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return newKeyMaterial(raw, models.KeyOriginRandom, true), nil
}

// ExportToText implements [KeyChainService].
func (k *keyChainService) ExportToText(key *KeyMaterial) (string, error) {
	if key == nil {
		return "", ErrEncryptionKeyRequired
	}
	if !key.extractable {
		return "", ErrKeyNotExtractable
	}
	return base64.StdEncoding.EncodeToString(key.key), nil
}

// ImportFromText implements [KeyChainService]. Surrounding whitespace (for
// example a trailing newline of a saved key file) is ignored.
func (k *keyChainService) ImportFromText(text string) (*KeyMaterial, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil || len(raw) != KeySize {
		return nil, ErrInvalidKeyFormat
	}
	return newKeyMaterial(raw, models.KeyOriginRandom, true), nil
}
