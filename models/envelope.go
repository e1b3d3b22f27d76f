// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedEnvelope is the output of one authenticated-encryption call.
// Both fields are standard base64. The pair is meaningless without the key
// that produced it.
type EncryptedEnvelope struct {
	// Ciphertext is AES-256-GCM output (ciphertext ‖ tag) over the JSON
	// encoding of the sensitive fields.
	Ciphertext string `json:"ciphertext"`

	// IV is the 12-byte nonce used for this call. It is fresh for every
	// encryption, even of identical plaintext under the same key.
	IV string `json:"iv"`
}

// IsZero reports whether the envelope carries no data.
func (e EncryptedEnvelope) IsZero() bool {
	return e.Ciphertext == "" && e.IV == ""
}
