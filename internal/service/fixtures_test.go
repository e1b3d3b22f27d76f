// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/codec"
	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/mock"
	"github.com/MKhiriev/go-ledger-keeper/internal/session"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

var fixedNow = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

// fixture bundles mocked storage with the real keychain and codecs.
type fixture struct {
	store    *mock.MockStore
	settings *mock.MockSettingsRepository
	keychain crypto.KeyChainService
	session  *session.Session
	txCodec  *codec.TransactionCodec
	goals    *codec.GoalCodec
	tables   []recordTable
	key      *crypto.KeyMaterial
}

// newFixture returns a fixture whose session is unlocked with a random key
// when encrypted is true and has no encryption otherwise.
func newFixture(t *testing.T, encrypted bool) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	keychain := crypto.NewKeyChainService()
	f := &fixture{
		store:    mock.NewMockStore(ctrl),
		settings: mock.NewMockSettingsRepository(ctrl),
		keychain: keychain,
		session:  session.New(encrypted),
		txCodec:  codec.NewTransactionCodec(keychain),
		goals:    codec.NewGoalCodec(keychain),
	}
	f.tables = []recordTable{newTransactionTable(f.txCodec), newGoalTable(f.goals)}

	if encrypted {
		key, err := keychain.GenerateRandom()
		require.NoError(t, err)
		f.key = key
		f.session.Unlock(key)
	}
	return f
}

func (f *fixture) currencyService(chunkSize, concurrency int) *currencyService {
	svc := NewCurrencyService(f.store, f.settings, f.session, f.tables, chunkSize, concurrency, logger.Nop()).(*currencyService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func (f *fixture) vaultService() *vaultService {
	svc := NewVaultService(f.store, f.settings, f.keychain, f.session, f.tables, 50, 1, logger.Nop()).(*vaultService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func (f *fixture) ledgerService() *ledgerService {
	svc := NewLedgerService(f.store, f.session, f.txCodec, f.goals, &sequenceIDs{}, logger.Nop()).(*ledgerService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// transactionRow stores a transaction with the given amount under key (nil
// stores it in clear).
func (f *fixture) transactionRow(t *testing.T, id string, amount float64, key *crypto.KeyMaterial) models.StorageRow {
	t.Helper()
	row, err := f.txCodec.ToStorage(models.Transaction{
		ID:        id,
		Type:      models.TransactionExpense,
		Date:      time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
		TransactionSecrets: models.TransactionSecrets{
			Amount:      amount,
			Description: "row " + id,
		},
	}, key)
	require.NoError(t, err)
	return row
}

func (f *fixture) goalRow(t *testing.T, id string, target, current float64, key *crypto.KeyMaterial) models.StorageRow {
	t.Helper()
	row, err := f.goals.ToStorage(models.Goal{
		ID:        id,
		Name:      "goal " + id,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
		GoalSecrets: models.GoalSecrets{
			TargetAmount:  target,
			CurrentAmount: current,
		},
	}, key)
	require.NoError(t, err)
	return row
}

// transactionRows returns n rows with ids tx-00, tx-01, ...
func (f *fixture) transactionRows(t *testing.T, n int, key *crypto.KeyMaterial) []models.StorageRow {
	t.Helper()
	rows := make([]models.StorageRow, n)
	for i := range rows {
		rows[i] = f.transactionRow(t, fmt.Sprintf("tx-%02d", i), float64(i+1)*10, key)
	}
	return rows
}

// openAmount returns the transaction amount carried by a partial or full row.
func (f *fixture) openAmount(t *testing.T, row models.StorageRow) float64 {
	t.Helper()
	secrets, err := f.txCodec.Open(row, f.key)
	require.NoError(t, err)
	return secrets.Amount
}

func setUpSettings(currency string) models.LocalSettings {
	return models.LocalSettings{Currency: currency, SetupCompleted: true}
}

// sequenceIDs hands out id-1, id-2, ...
type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}
