// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/internal/session"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

func captureSave(f *fixture, saved *models.LocalSettings) *gomock.Call {
	return f.settings.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s models.LocalSettings) error {
		*saved = s
		return nil
	})
}

// passwordLedger returns a fixture locked over a password-mode ledger plus
// one transaction row encrypted with the key derived from password.
func passwordLedger(t *testing.T, password string) (*fixture, models.LocalSettings, models.StorageRow) {
	t.Helper()
	f := newFixture(t, false)
	f.session = session.New(true)

	key, salt, err := f.keychain.DeriveFromPassword(password, nil)
	require.NoError(t, err)

	settings := setUpSettings("USD")
	settings.Encryption = models.EncryptionSettings{
		Enabled: true,
		Mode:    models.EncryptionModePassword,
		Salt:    base64.StdEncoding.EncodeToString(salt),
	}
	return f, settings, f.transactionRow(t, "a", 10, key)
}

// ─────────────────────────────────────────────
// Setup
// ─────────────────────────────────────────────

func TestSetup_NoEncryption(t *testing.T) {
	f := newFixture(t, false)
	svc := f.vaultService()
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(models.LocalSettings{}, nil)
	var saved models.LocalSettings
	captureSave(f, &saved)

	exported, err := svc.Setup(ctx, SetupRequest{Currency: "usd", Mode: models.EncryptionModeNone})
	require.NoError(t, err)

	assert.Empty(t, exported)
	assert.Equal(t, "USD", saved.Currency)
	assert.True(t, saved.SetupCompleted)
	assert.False(t, saved.Encryption.Enabled)
	assert.Equal(t, session.NoEncryption, f.session.State())
}

func TestSetup_RandomKey(t *testing.T) {
	f := newFixture(t, false)
	svc := f.vaultService()
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(models.LocalSettings{}, nil)
	var saved models.LocalSettings
	captureSave(f, &saved)

	exported, err := svc.Setup(ctx, SetupRequest{Currency: "EUR", Mode: models.EncryptionModeRandom})
	require.NoError(t, err)

	require.NotEmpty(t, exported)
	_, err = f.keychain.ImportFromText(exported)
	require.NoError(t, err)

	assert.True(t, saved.Encryption.Enabled)
	assert.Equal(t, models.EncryptionModeRandom, saved.Encryption.Mode)
	assert.Empty(t, saved.Encryption.Salt)
	assert.Equal(t, session.Unlocked, f.session.State())
}

func TestSetup_Password(t *testing.T) {
	f := newFixture(t, false)
	svc := f.vaultService()
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(models.LocalSettings{}, nil)
	var saved models.LocalSettings
	captureSave(f, &saved)

	exported, err := svc.Setup(ctx, SetupRequest{Currency: "EUR", Mode: models.EncryptionModePassword, Password: "hunter2"})
	require.NoError(t, err)
	assert.Empty(t, exported)

	salt, err := base64.StdEncoding.DecodeString(saved.Encryption.Salt)
	require.NoError(t, err)
	assert.Len(t, salt, crypto.SaltSize)

	key, err := f.session.Key()
	require.NoError(t, err)
	assert.Equal(t, models.KeyOriginPassword, key.Origin())
}

func TestSetup_PasswordRequired(t *testing.T) {
	f := newFixture(t, false)
	svc := f.vaultService()
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(models.LocalSettings{}, nil)

	_, err := svc.Setup(ctx, SetupRequest{Currency: "EUR", Mode: models.EncryptionModePassword})
	assert.ErrorIs(t, err, crypto.ErrEmptyPassword)
}

func TestSetup_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("already set up", func(t *testing.T) {
		f := newFixture(t, false)
		f.settings.EXPECT().Load(ctx).Return(setUpSettings("USD"), nil)

		_, err := f.vaultService().Setup(ctx, SetupRequest{Currency: "EUR", Mode: models.EncryptionModeNone})
		assert.ErrorIs(t, err, ErrAlreadySetUp)
	})

	t.Run("unknown mode", func(t *testing.T) {
		f := newFixture(t, false)
		_, err := f.vaultService().Setup(ctx, SetupRequest{Currency: "EUR", Mode: "rot13"})
		assert.ErrorIs(t, err, ErrInvalidEncryptionMode)
	})

	t.Run("bad currency", func(t *testing.T) {
		f := newFixture(t, false)
		_, err := f.vaultService().Setup(ctx, SetupRequest{Currency: "EU", Mode: models.EncryptionModeNone})
		assert.ErrorIs(t, err, ErrInvalidCurrency)
	})
}

// ─────────────────────────────────────────────
// Unlock / Lock
// ─────────────────────────────────────────────

func TestUnlockWithPassword_WrongPasswordStaysLocked(t *testing.T) {
	f, settings, row := passwordLedger(t, "correct horse")
	svc := f.vaultService()
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(settings, nil)
	f.store.EXPECT().ReadAll(ctx, "transactions").Return([]models.StorageRow{row}, nil)

	err := svc.UnlockWithPassword(ctx, "battery staple")
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.Equal(t, session.Locked, f.session.State())
}

func TestUnlockWithPassword_RightPasswordUnlocks(t *testing.T) {
	f, settings, row := passwordLedger(t, "correct horse")
	svc := f.vaultService()
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(settings, nil)
	f.store.EXPECT().ReadAll(ctx, "transactions").Return([]models.StorageRow{row}, nil)

	require.NoError(t, svc.UnlockWithPassword(ctx, "correct horse"))
	assert.Equal(t, session.Unlocked, f.session.State())
}

func TestUnlockWithPassword_SkipsClearRows(t *testing.T) {
	f, settings, _ := passwordLedger(t, "pw")
	svc := f.vaultService()
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(settings, nil)
	f.store.EXPECT().ReadAll(ctx, "transactions").Return(f.transactionRows(t, 2, nil), nil)
	f.store.EXPECT().ReadAll(ctx, "goals").Return(nil, nil)

	require.NoError(t, svc.UnlockWithPassword(ctx, "any password"))
	assert.Equal(t, session.Unlocked, f.session.State())
}

func TestUnlockWithPassword_CorruptedSalt(t *testing.T) {
	f, settings, _ := passwordLedger(t, "pw")
	settings.Encryption.Salt = "%%%"
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(settings, nil)

	err := f.vaultService().UnlockWithPassword(ctx, "pw")
	assert.Error(t, err)
	assert.Equal(t, session.Locked, f.session.State())
}

func TestUnlockWithKey(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, false)
	f.session = session.New(true)
	key, err := f.keychain.GenerateRandom()
	require.NoError(t, err)
	text, err := f.keychain.ExportToText(key)
	require.NoError(t, err)

	settings := setUpSettings("USD")
	settings.Encryption = models.EncryptionSettings{Enabled: true, Mode: models.EncryptionModeRandom}
	row := f.goalRow(t, "g", 100, 5, key)

	t.Run("wrong key", func(t *testing.T) {
		other, err := f.keychain.GenerateRandom()
		require.NoError(t, err)
		otherText, err := f.keychain.ExportToText(other)
		require.NoError(t, err)

		f.settings.EXPECT().Load(ctx).Return(settings, nil)
		f.store.EXPECT().ReadAll(ctx, "transactions").Return(nil, nil)
		f.store.EXPECT().ReadAll(ctx, "goals").Return([]models.StorageRow{row}, nil)

		assert.ErrorIs(t, f.vaultService().UnlockWithKey(ctx, otherText), crypto.ErrDecryptionFailed)
		assert.Equal(t, session.Locked, f.session.State())
	})

	t.Run("malformed key text", func(t *testing.T) {
		f.settings.EXPECT().Load(ctx).Return(settings, nil)

		assert.ErrorIs(t, f.vaultService().UnlockWithKey(ctx, "not a key"), crypto.ErrInvalidKeyFormat)
	})

	t.Run("right key", func(t *testing.T) {
		f.settings.EXPECT().Load(ctx).Return(settings, nil)
		f.store.EXPECT().ReadAll(ctx, "transactions").Return(nil, nil)
		f.store.EXPECT().ReadAll(ctx, "goals").Return([]models.StorageRow{row}, nil)

		require.NoError(t, f.vaultService().UnlockWithKey(ctx, text+"\n"))
		assert.Equal(t, session.Unlocked, f.session.State())
	})
}

func TestUnlock_WrongMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("key file on password ledger", func(t *testing.T) {
		f, settings, _ := passwordLedger(t, "pw")
		f.settings.EXPECT().Load(ctx).Return(settings, nil)

		assert.ErrorIs(t, f.vaultService().UnlockWithKey(ctx, "AAAA"), ErrWrongUnlockMethod)
	})

	t.Run("unencrypted ledger", func(t *testing.T) {
		f := newFixture(t, false)
		f.settings.EXPECT().Load(ctx).Return(setUpSettings("USD"), nil)

		assert.ErrorIs(t, f.vaultService().UnlockWithPassword(ctx, "pw"), ErrWrongUnlockMethod)
	})

	t.Run("not set up", func(t *testing.T) {
		f := newFixture(t, false)
		f.settings.EXPECT().Load(ctx).Return(models.LocalSettings{}, nil)

		assert.ErrorIs(t, f.vaultService().UnlockWithPassword(ctx, "pw"), ErrSetupRequired)
	})
}

func TestLock(t *testing.T) {
	f := newFixture(t, true)
	svc := f.vaultService()

	svc.Lock()

	assert.Equal(t, session.Locked, f.session.State())
	_, err := f.session.Key()
	assert.ErrorIs(t, err, crypto.ErrEncryptionKeyRequired)
}

// ─────────────────────────────────────────────
// Status / ExportKey
// ─────────────────────────────────────────────

func TestStatus(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	settings := setUpSettings("JPY")
	settings.Encryption = models.EncryptionSettings{Enabled: true, Mode: models.EncryptionModeRandom}
	settings.PendingRebase = &models.RebaseCheckpoint{From: "JPY", To: "USD", Rate: 0.0067}
	f.settings.EXPECT().Load(ctx).Return(settings, nil)

	status, err := f.vaultService().Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, VaultStatus{
		SetupCompleted: true,
		Currency:       "JPY",
		Mode:           models.EncryptionModeRandom,
		State:          session.Unlocked,
		PendingRebase:  settings.PendingRebase,
	}, status)
}

func TestExportKey(t *testing.T) {
	ctx := context.Background()

	t.Run("random key", func(t *testing.T) {
		f := newFixture(t, true)
		text, err := f.vaultService().ExportKey(ctx)
		require.NoError(t, err)

		imported, err := f.keychain.ImportFromText(text)
		require.NoError(t, err)
		assert.Equal(t, models.KeyOriginRandom, imported.Origin())
	})

	t.Run("locked", func(t *testing.T) {
		f := newFixture(t, true)
		f.session.Lock()
		_, err := f.vaultService().ExportKey(ctx)
		assert.ErrorIs(t, err, crypto.ErrEncryptionKeyRequired)
	})

	t.Run("password key", func(t *testing.T) {
		f := newFixture(t, false)
		key, _, err := f.keychain.DeriveFromPassword("pw", nil)
		require.NoError(t, err)
		f.session.Unlock(key)

		_, err = f.vaultService().ExportKey(ctx)
		assert.ErrorIs(t, err, crypto.ErrKeyNotExtractable)
	})
}

// ─────────────────────────────────────────────
// EnableEncryption
// ─────────────────────────────────────────────

func TestEnableEncryption_SavesSettingsBeforeRewriting(t *testing.T) {
	f := newFixture(t, false)
	svc := f.vaultService()
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(setUpSettings("USD"), nil)
	f.store.EXPECT().ReadAll(gomock.Any(), "transactions").Return(f.transactionRows(t, 2, nil), nil)
	f.store.EXPECT().ReadAll(gomock.Any(), "goals").Return([]models.StorageRow{f.goalRow(t, "g", 50, 5, nil)}, nil)

	var saved models.LocalSettings
	save := captureSave(f, &saved)

	var partials []models.StorageRow
	update := f.store.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, p models.StorageRow) (models.StorageRow, error) {
			partials = append(partials, p)
			return p, nil
		}).Times(3)
	gomock.InOrder(save, update)

	exported, report, err := svc.EnableEncryption(ctx, models.EncryptionModeRandom, "")
	require.NoError(t, err)
	require.NotEmpty(t, exported)

	assert.True(t, saved.Encryption.Enabled)
	assert.Equal(t, models.EncryptionModeRandom, saved.Encryption.Mode)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 3, report.Succeeded)

	key, err := f.keychain.ImportFromText(exported)
	require.NoError(t, err)
	for _, p := range partials {
		require.True(t, p.IsEncrypted(), "row %s still clear", p.ID)
	}
	secrets, err := f.txCodec.Open(partials[0], key)
	require.NoError(t, err)
	assert.Equal(t, 10.0, secrets.Amount)
	assert.Equal(t, session.Unlocked, f.session.State())
}

func TestEnableEncryption_PasswordWithNoRecords(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(setUpSettings("USD"), nil)
	var saved models.LocalSettings
	captureSave(f, &saved)
	f.store.EXPECT().ReadAll(gomock.Any(), "transactions").Return(nil, nil)
	f.store.EXPECT().ReadAll(gomock.Any(), "goals").Return(nil, nil)

	exported, report, err := f.vaultService().EnableEncryption(ctx, models.EncryptionModePassword, "pw")
	require.NoError(t, err)
	assert.Empty(t, exported)
	assert.Zero(t, report.Total)
	assert.NotEmpty(t, saved.Encryption.Salt)
}

func TestEnableEncryption_AlreadyEncrypted(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	settings := setUpSettings("USD")
	settings.Encryption = models.EncryptionSettings{Enabled: true, Mode: models.EncryptionModeRandom}
	f.settings.EXPECT().Load(ctx).Return(settings, nil)
	f.store.EXPECT().ReadAll(gomock.Any(), "transactions").Return([]models.StorageRow{f.transactionRow(t, "a", 1, f.key)}, nil)
	f.store.EXPECT().ReadAll(gomock.Any(), "goals").Return(nil, nil)

	_, _, err := f.vaultService().EnableEncryption(ctx, models.EncryptionModeRandom, "")
	assert.ErrorIs(t, err, ErrEncryptionAlreadyEnabled)
}

func TestEnableEncryption_ResumesLeftoverClearRows(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	settings := setUpSettings("USD")
	settings.Encryption = models.EncryptionSettings{Enabled: true, Mode: models.EncryptionModeRandom}
	f.settings.EXPECT().Load(ctx).Return(settings, nil)
	f.store.EXPECT().ReadAll(gomock.Any(), "transactions").Return([]models.StorageRow{
		f.transactionRow(t, "done", 1, f.key),
		f.transactionRow(t, "left", 2, nil),
	}, nil)
	f.store.EXPECT().ReadAll(gomock.Any(), "goals").Return(nil, nil)
	f.store.EXPECT().Update(gomock.Any(), "transactions", "left", gomock.Any()).DoAndReturn(echoUpdate)

	_, report, err := f.vaultService().EnableEncryption(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
}

func TestEnableEncryption_PartialFailureNamesEncrypt(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(setUpSettings("USD"), nil)
	var saved models.LocalSettings
	captureSave(f, &saved)
	f.store.EXPECT().ReadAll(gomock.Any(), "transactions").Return(f.transactionRows(t, 2, nil), nil)
	f.store.EXPECT().ReadAll(gomock.Any(), "goals").Return(nil, nil)
	f.store.EXPECT().Update(gomock.Any(), "transactions", "tx-00", gomock.Any()).Return(models.StorageRow{}, errStoreDown)

	exported, report, err := f.vaultService().EnableEncryption(ctx, models.EncryptionModeRandom, "")

	assert.NotEmpty(t, exported, "the key is returned even when rows stay clear")
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.NotAttempted)

	var partial *PartialRewriteError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, RewriteEncrypt, partial.Op)
}

func TestEnableEncryption_InvalidMode(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.settings.EXPECT().Load(ctx).Return(setUpSettings("USD"), nil)

	_, _, err := f.vaultService().EnableEncryption(ctx, models.EncryptionModeNone, "")
	assert.ErrorIs(t, err, ErrInvalidEncryptionMode)
}
