// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/crypto"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/session"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type vaultService struct {
	store    store.Store
	settings store.SettingsRepository
	keychain crypto.KeyChainService
	session  *session.Session
	tables   []recordTable
	rewriter batchRewriter
	now      func() time.Time
	logger   *logger.Logger
}

// NewVaultService returns a [VaultService] driving sess.
func NewVaultService(
	st store.Store,
	settings store.SettingsRepository,
	keychain crypto.KeyChainService,
	sess *session.Session,
	tables []recordTable,
	chunkSize, concurrency int,
	log *logger.Logger,
) VaultService {
	return &vaultService{
		store:    st,
		settings: settings,
		keychain: keychain,
		session:  sess,
		tables:   tables,
		rewriter: batchRewriter{store: st, chunkSize: chunkSize, concurrency: concurrency},
		now:      time.Now,
		logger:   log,
	}
}

func (v *vaultService) Setup(ctx context.Context, req SetupRequest) (string, error) {
	log := v.logger.With().Str("func", "vaultService.Setup").Logger()

	currency, err := normalizeCurrency(req.Currency)
	if err != nil {
		return "", err
	}
	if !req.Mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidEncryptionMode, req.Mode)
	}

	settings, err := v.settings.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}
	if settings.SetupCompleted {
		return "", ErrAlreadySetUp
	}

	settings = models.LocalSettings{Currency: currency, SetupCompleted: true}

	var (
		key      *crypto.KeyMaterial
		exported string
	)
	switch req.Mode {
	case models.EncryptionModeNone:
		settings.Encryption = models.EncryptionSettings{Mode: models.EncryptionModeNone}
	default:
		key, exported, settings.Encryption, err = v.newKey(req.Mode, req.Password)
		if err != nil {
			return "", err
		}
	}

	if err = v.settings.Save(ctx, settings); err != nil {
		return "", fmt.Errorf("save settings: %w", err)
	}

	if key == nil {
		v.session.Disable()
	} else {
		v.session.Unlock(key)
	}

	log.Info().Str("currency", currency).Str("mode", string(req.Mode)).Msg("ledger set up")
	return exported, nil
}

func (v *vaultService) UnlockWithPassword(ctx context.Context, password string) error {
	settings, err := v.encryptedSettings(ctx)
	if err != nil {
		return err
	}
	if settings.Encryption.Mode != models.EncryptionModePassword {
		return ErrWrongUnlockMethod
	}

	salt, err := base64.StdEncoding.DecodeString(settings.Encryption.Salt)
	if err != nil || len(salt) == 0 {
		return fmt.Errorf("%w: password salt is unreadable", store.ErrSettingsCorrupted)
	}

	key, _, err := v.keychain.DeriveFromPassword(password, salt)
	if err != nil {
		return err
	}
	return v.unlock(ctx, key)
}

func (v *vaultService) UnlockWithKey(ctx context.Context, keyText string) error {
	settings, err := v.encryptedSettings(ctx)
	if err != nil {
		return err
	}
	if settings.Encryption.Mode != models.EncryptionModeRandom {
		return ErrWrongUnlockMethod
	}

	key, err := v.keychain.ImportFromText(keyText)
	if err != nil {
		return err
	}
	return v.unlock(ctx, key)
}

func (v *vaultService) Lock() {
	v.session.Lock()
	v.logger.Info().Str("func", "vaultService.Lock").Msg("session locked")
}

func (v *vaultService) Status(ctx context.Context) (VaultStatus, error) {
	settings, err := v.settings.Load(ctx)
	if err != nil {
		return VaultStatus{}, fmt.Errorf("load settings: %w", err)
	}

	return VaultStatus{
		SetupCompleted: settings.SetupCompleted,
		Currency:       settings.Currency,
		Mode:           settings.Encryption.Mode,
		State:          v.session.State(),
		PendingRebase:  settings.PendingRebase,
	}, nil
}

func (v *vaultService) ExportKey(_ context.Context) (string, error) {
	key, err := v.session.Key()
	if err != nil {
		return "", err
	}
	return v.keychain.ExportToText(key)
}

func (v *vaultService) EnableEncryption(ctx context.Context, mode models.EncryptionMode, password string) (string, models.RebaseReport, error) {
	log := v.logger.With().Str("func", "vaultService.EnableEncryption").Logger()

	settings, err := v.settings.Load(ctx)
	if err != nil {
		return "", models.RebaseReport{}, fmt.Errorf("load settings: %w", err)
	}
	if !settings.SetupCompleted {
		return "", models.RebaseReport{}, ErrSetupRequired
	}

	var (
		key      *crypto.KeyMaterial
		exported string
		resumed  = settings.Encryption.Enabled
	)
	if resumed {
		if key, err = v.session.Key(); err != nil {
			return "", models.RebaseReport{}, err
		}
	} else {
		if mode != models.EncryptionModePassword && mode != models.EncryptionModeRandom {
			return "", models.RebaseReport{}, fmt.Errorf("%w: %q", ErrInvalidEncryptionMode, mode)
		}

		key, exported, settings.Encryption, err = v.newKey(mode, password)
		if err != nil {
			return "", models.RebaseReport{}, err
		}

		// the salt must be on disk before any row depends on it
		if err = v.settings.Save(ctx, settings); err != nil {
			return "", models.RebaseReport{}, fmt.Errorf("save settings: %w", err)
		}
		v.session.Unlock(key)
		log.Info().Str("mode", string(mode)).Msg("encryption enabled")
	}

	storeCtx := context.WithoutCancel(ctx)

	items, err := v.clearRows(storeCtx)
	if err != nil {
		return exported, models.RebaseReport{}, err
	}
	if len(items) == 0 && resumed {
		return "", models.RebaseReport{}, ErrEncryptionAlreadyEnabled
	}

	now := v.now()
	res, err := v.rewriter.run(storeCtx, items, func(item rewriteItem) (models.StorageRow, error) {
		return item.table.reseal(item.row, now, key)
	}, nil)

	report := models.RebaseReport{
		Total:        len(items),
		Succeeded:    len(res.done),
		Failed:       res.failed,
		NotAttempted: res.notAttempted,
	}
	if err != nil {
		return exported, report, err
	}
	if res.failed > 0 {
		log.Error().Err(res.cause).
			Int("succeeded", report.Succeeded).
			Int("failed", report.Failed).
			Int("not_attempted", report.NotAttempted).
			Msg("encrypting existing records partially failed")
		return exported, report, &PartialRewriteError{
			Op:           RewriteEncrypt,
			Total:        report.Total,
			Succeeded:    report.Succeeded,
			Failed:       report.Failed,
			NotAttempted: report.NotAttempted,
			Cause:        res.cause,
		}
	}

	log.Info().Int("encrypted", report.Succeeded).Msg("existing records encrypted")
	return exported, report, nil
}

// newKey creates the key for mode and the settings describing it.
func (v *vaultService) newKey(mode models.EncryptionMode, password string) (*crypto.KeyMaterial, string, models.EncryptionSettings, error) {
	enc := models.EncryptionSettings{Enabled: true, Mode: mode}

	switch mode {
	case models.EncryptionModePassword:
		key, salt, err := v.keychain.DeriveFromPassword(password, nil)
		if err != nil {
			return nil, "", models.EncryptionSettings{}, err
		}
		enc.Salt = base64.StdEncoding.EncodeToString(salt)
		return key, "", enc, nil

	case models.EncryptionModeRandom:
		key, err := v.keychain.GenerateRandom()
		if err != nil {
			return nil, "", models.EncryptionSettings{}, err
		}
		exported, err := v.keychain.ExportToText(key)
		if err != nil {
			return nil, "", models.EncryptionSettings{}, err
		}
		return key, exported, enc, nil
	}

	return nil, "", models.EncryptionSettings{}, fmt.Errorf("%w: %q", ErrInvalidEncryptionMode, mode)
}

func (v *vaultService) encryptedSettings(ctx context.Context) (models.LocalSettings, error) {
	settings, err := v.settings.Load(ctx)
	if err != nil {
		return models.LocalSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if !settings.SetupCompleted {
		return models.LocalSettings{}, ErrSetupRequired
	}
	if !settings.Encryption.Enabled {
		return models.LocalSettings{}, ErrWrongUnlockMethod
	}
	return settings, nil
}

// unlock opens the first encrypted row with key before accepting it. With no
// encrypted row yet the key is accepted as is.
func (v *vaultService) unlock(ctx context.Context, key *crypto.KeyMaterial) error {
	log := v.logger.With().Str("func", "vaultService.unlock").Logger()

	for _, t := range v.tables {
		rows, err := v.store.ReadAll(ctx, t.table().Name)
		if err != nil {
			return fmt.Errorf("read %s: %w", t.table().Name, err)
		}
		for _, row := range rows {
			if !row.IsEncrypted() {
				continue
			}
			if err = t.open(row, key); err != nil {
				log.Warn().Str("origin", string(key.Origin())).Msg("unlock rejected")
				if errors.Is(err, crypto.ErrDecryptionFailed) {
					return crypto.ErrDecryptionFailed
				}
				return err
			}
			v.session.Unlock(key)
			log.Info().Str("origin", string(key.Origin())).Msg("session unlocked")
			return nil
		}
	}

	v.session.Unlock(key)
	log.Info().Str("origin", string(key.Origin())).Msg("session unlocked without a record to verify against")
	return nil
}

func (v *vaultService) clearRows(ctx context.Context) ([]rewriteItem, error) {
	var items []rewriteItem
	for _, t := range v.tables {
		rows, err := v.store.ReadAll(ctx, t.table().Name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", t.table().Name, err)
		}
		for _, row := range rows {
			if !row.IsEncrypted() {
				items = append(items, rewriteItem{table: t, row: row})
			}
		}
	}
	return items, nil
}
