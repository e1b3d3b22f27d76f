// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Encrypt implements [KeyChainService].
func (k *keyChainService) Encrypt(plaintext any, key *KeyMaterial) (models.EncryptedEnvelope, error) {
	if key == nil {
		return models.EncryptedEnvelope{}, ErrEncryptionKeyRequired
	}

	// 1. Serialize to JSON
	data, err := json.Marshal(plaintext)
	if err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("marshal plaintext: %w", err)
	}

	// 2. Build AES-GCM cipher from the key
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedEnvelope{}, err
	}

	// 3. Fresh nonce for every call
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(k.random, nonce); err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	// 4. Encrypt; nonce travels separately
	sealed := gcm.Seal(nil, nonce, data, nil)

	return models.EncryptedEnvelope{
		Ciphertext: base64.StdEncoding.EncodeToString(sealed),
		IV:         base64.StdEncoding.EncodeToString(nonce),
	}, nil
}

// Decrypt implements [KeyChainService]. Internal causes are dropped on
// purpose: callers only ever see ErrDecryptionFailed.
func (k *keyChainService) Decrypt(envelope models.EncryptedEnvelope, key *KeyMaterial, target any) error {
	if key == nil {
		return ErrEncryptionKeyRequired
	}

	sealed, err := base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil {
		return ErrDecryptionFailed
	}
	nonce, err := base64.StdEncoding.DecodeString(envelope.IV)
	if err != nil {
		return ErrDecryptionFailed
	}

	gcm, err := newGCM(key)
	if err != nil {
		return ErrDecryptionFailed
	}
	if len(nonce) != gcm.NonceSize() || len(sealed) < gcm.Overhead() {
		return ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return ErrDecryptionFailed
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return ErrDecryptionFailed
	}

	return nil
}

func newGCM(key *KeyMaterial) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
