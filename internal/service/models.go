// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-ledger-keeper/internal/session"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// SetupRequest is the input of [VaultService.Setup].
type SetupRequest struct {
	Currency string
	Mode     models.EncryptionMode
	// Password is required for password mode and ignored otherwise.
	Password string
}

// VaultStatus is returned by [VaultService.Status].
type VaultStatus struct {
	SetupCompleted bool
	Currency       string
	Mode           models.EncryptionMode
	State          session.State
	PendingRebase  *models.RebaseCheckpoint
}
