// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/codec"
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/session"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
)

type ClientServices struct {
	VaultService    VaultService
	LedgerService   LedgerService
	CurrencyService CurrencyService
	AutoLockJob     AutoLockJob

	Session *session.Session
}

// NewClientServices wires every service over storages. The session starts
// locked when the saved settings have encryption enabled.
func NewClientServices(ctx context.Context, storages *store.ClientStorages, cfg config.ClientRebase, log *logger.Logger) (*ClientServices, error) {
	settings, err := storages.Settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	keychain := crypto.NewKeyChainService()
	sess := session.New(settings.Encryption.Enabled)

	transactions := codec.NewTransactionCodec(keychain)
	goals := codec.NewGoalCodec(keychain)
	tables := []recordTable{newTransactionTable(transactions), newGoalTable(goals)}

	ledger := NewLedgerService(storages.Records, sess, transactions, goals, utils.NewUUIDGenerator(), log)

	return &ClientServices{
		VaultService:    NewVaultService(storages.Records, storages.Settings, keychain, sess, tables, cfg.ChunkSize, cfg.Concurrency, log),
		LedgerService:   NewLedgerValidationService().Wrap(ledger),
		CurrencyService: NewCurrencyService(storages.Records, storages.Settings, sess, tables, cfg.ChunkSize, cfg.Concurrency, log),
		AutoLockJob:     NewAutoLockJob(sess, log),
		Session:         sess,
	}, nil
}
