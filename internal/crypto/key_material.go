// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-ledger-keeper/models"

// KeySize is the data key length in bytes (AES-256).
const KeySize = 32

// KeyMaterial is an in-memory data key plus the way it was obtained. The raw
// bytes are only reachable from this package; a value is never mutated after
// construction.
type KeyMaterial struct {
	key         []byte
	origin      models.KeyOrigin
	extractable bool
}

func newKeyMaterial(raw []byte, origin models.KeyOrigin, extractable bool) *KeyMaterial {
	return &KeyMaterial{
		key:         append([]byte(nil), raw...),
		origin:      origin,
		extractable: extractable,
	}
}

// Origin reports whether the key came from a password or from randomness.
func (k *KeyMaterial) Origin() models.KeyOrigin {
	return k.origin
}

// Extractable reports whether ExportToText may reveal the key.
func (k *KeyMaterial) Extractable() bool {
	return k.extractable
}

// String never prints key bytes.
func (k *KeyMaterial) String() string {
	return "KeyMaterial(" + string(k.origin) + ")"
}
