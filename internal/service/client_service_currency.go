// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/session"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// amountPlaces is the number of decimal places every converted amount is
// rounded to, whatever the currency.
const amountPlaces = 2

type currencyService struct {
	store    store.Store
	settings store.SettingsRepository
	session  *session.Session
	tables   []recordTable
	rewriter batchRewriter
	now      func() time.Time
	logger   *logger.Logger
}

// NewCurrencyService returns a [CurrencyService]. chunkSize rows are
// checkpointed together and up to concurrency rows of a chunk are rewritten
// in parallel.
func NewCurrencyService(
	st store.Store,
	settings store.SettingsRepository,
	sess *session.Session,
	tables []recordTable,
	chunkSize, concurrency int,
	log *logger.Logger,
) CurrencyService {
	return &currencyService{
		store:    st,
		settings: settings,
		session:  sess,
		tables:   tables,
		rewriter: batchRewriter{store: st, chunkSize: chunkSize, concurrency: concurrency},
		now:      time.Now,
		logger:   log,
	}
}

func (c *currencyService) DecideFor(recordCount int) models.RebaseDecision {
	if recordCount == 0 {
		return models.DecisionImmediate
	}
	return models.DecisionNeedsUserChoice
}

func (c *currencyService) Decide(ctx context.Context) (models.RebaseDecision, error) {
	count := 0
	for _, t := range c.tables {
		rows, err := c.store.ReadAll(ctx, t.table().Name)
		if err != nil {
			return models.DecisionNeedsUserChoice, fmt.Errorf("count %s: %w", t.table().Name, err)
		}
		count += len(rows)
	}
	return c.DecideFor(count), nil
}

func (c *currencyService) ChangeCurrency(ctx context.Context, newCode string) error {
	log := c.logger.With().Str("func", "currencyService.ChangeCurrency").Logger()

	code, err := normalizeCurrency(newCode)
	if err != nil {
		return err
	}

	settings, err := c.loadSetUp(ctx)
	if err != nil {
		return err
	}
	if settings.Currency == code {
		return nil
	}

	decision, err := c.Decide(ctx)
	if err != nil {
		return err
	}
	if decision != models.DecisionImmediate {
		return ErrUserChoiceRequired
	}

	log.Info().Str("from", settings.Currency).Str("to", code).Msg("no records, currency changed immediately")
	settings.Currency = code
	return c.settings.Save(ctx, settings)
}

func (c *currencyService) KeepAsIs(ctx context.Context, oldCode, newCode string) error {
	settings, from, to, err := c.prepareRebase(ctx, oldCode, newCode)
	if err != nil {
		return err
	}

	log := c.logger.With().Str("func", "currencyService.KeepAsIs").Logger()

	if pending := settings.PendingRebase; pending != nil {
		log.Warn().Str("pending_to", pending.To).Float64("pending_rate", pending.Rate).
			Msg("relabel refused, a conversion is unfinished")
		return &RebasePendingError{Pending: *pending}
	}

	log.Info().Str("from", from).Str("to", to).Msg("currency relabelled, amounts kept")

	settings.Currency = to
	return c.settings.Save(ctx, settings)
}

func (c *currencyService) Convert(ctx context.Context, oldCode, newCode string, rate float64) (models.RebaseReport, error) {
	log := c.logger.With().Str("func", "currencyService.Convert").Logger()

	if err := validateRate(rate); err != nil {
		return models.RebaseReport{}, err
	}

	key, err := c.session.Key()
	if err != nil {
		return models.RebaseReport{}, err
	}

	// a started conversion runs to the end even if the caller goes away
	storeCtx := context.WithoutCancel(ctx)

	settings, from, to, err := c.prepareRebase(storeCtx, oldCode, newCode)
	if err != nil {
		return models.RebaseReport{}, err
	}
	report := models.RebaseReport{From: from, To: to, Rate: rate}

	checkpoint := settings.PendingRebase
	switch {
	case checkpoint == nil:
		checkpoint = &models.RebaseCheckpoint{From: from, To: to, Rate: rate, StartedAt: c.now().UTC()}
	case !checkpoint.Matches(from, to, rate):
		log.Warn().Str("pending_to", checkpoint.To).Float64("pending_rate", checkpoint.Rate).
			Str("to", to).Float64("rate", rate).
			Msg("conversion refused, another one is unfinished")
		return report, &RebasePendingError{Pending: *checkpoint}
	}

	items, skipped, err := c.snapshot(storeCtx, checkpoint.Done)
	if err != nil {
		return report, err
	}
	report.Total = len(items) + skipped
	report.Skipped = skipped

	factor := decimal.NewFromFloat(rate)
	scale := func(a float64) float64 { return convertAmount(a, factor) }
	now := c.now()

	res, err := c.rewriter.run(storeCtx, items,
		func(item rewriteItem) (models.StorageRow, error) {
			return item.table.scaleAmounts(item.row, scale, now, key)
		},
		func(done []string) error {
			checkpoint.Done = append(checkpoint.Done, done...)
			settings.PendingRebase = checkpoint
			if err := c.settings.Save(storeCtx, settings); err != nil {
				return fmt.Errorf("save rebase checkpoint: %w", err)
			}
			return nil
		})

	report.Succeeded = len(res.done)
	report.Failed = res.failed
	report.NotAttempted = res.notAttempted

	if err != nil {
		log.Err(err).Int("succeeded", report.Succeeded).Msg("conversion stopped")
		return report, err
	}

	if res.failed > 0 {
		log.Error().Err(res.cause).
			Int("total", report.Total).
			Int("succeeded", report.Succeeded).
			Int("failed", report.Failed).
			Int("not_attempted", report.NotAttempted).
			Msg("conversion partially failed, ledger keeps the old currency")
		return report, &PartialRewriteError{
			Op:           RewriteConvert,
			Total:        report.Total,
			Succeeded:    report.Succeeded,
			Failed:       report.Failed,
			NotAttempted: report.NotAttempted,
			Skipped:      report.Skipped,
			Cause:        res.cause,
		}
	}

	settings.Currency = to
	settings.PendingRebase = nil
	if err = c.settings.Save(storeCtx, settings); err != nil {
		return report, fmt.Errorf("save converted currency: %w", err)
	}

	log.Info().Str("from", from).Str("to", to).Float64("rate", rate).
		Int("converted", report.Succeeded).Int("skipped", report.Skipped).
		Msg("currency converted")
	return report, nil
}

func (c *currencyService) PendingRebase(ctx context.Context) (*models.RebaseCheckpoint, error) {
	settings, err := c.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return settings.PendingRebase, nil
}

func (c *currencyService) AbandonRebase(ctx context.Context) (*models.RebaseCheckpoint, error) {
	settings, err := c.loadSetUp(ctx)
	if err != nil {
		return nil, err
	}

	pending := settings.PendingRebase
	if pending == nil {
		return nil, nil
	}

	settings.PendingRebase = nil
	if err = c.settings.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	c.logger.Warn().Str("func", "currencyService.AbandonRebase").
		Str("from", pending.From).Str("to", pending.To).Float64("rate", pending.Rate).
		Int("converted", len(pending.Done)).
		Msg("unfinished conversion abandoned, ledger amounts are mixed")
	return pending, nil
}

// snapshot fixes the set of rows to convert. Rows whose key is in done were
// converted by an earlier run and are only counted.
func (c *currencyService) snapshot(ctx context.Context, done []string) ([]rewriteItem, int, error) {
	var (
		items   []rewriteItem
		skipped int
	)
	for _, t := range c.tables {
		rows, err := c.store.ReadAll(ctx, t.table().Name)
		if err != nil {
			return nil, 0, fmt.Errorf("read %s: %w", t.table().Name, err)
		}
		for _, row := range rows {
			if slices.Contains(done, models.RecordKey(t.table().Name, row.ID)) {
				skipped++
				continue
			}
			items = append(items, rewriteItem{table: t, row: row})
		}
	}
	return items, skipped, nil
}

func (c *currencyService) prepareRebase(ctx context.Context, oldCode, newCode string) (models.LocalSettings, string, string, error) {
	from, err := normalizeCurrency(oldCode)
	if err != nil {
		return models.LocalSettings{}, "", "", err
	}
	to, err := normalizeCurrency(newCode)
	if err != nil {
		return models.LocalSettings{}, "", "", err
	}

	settings, err := c.loadSetUp(ctx)
	if err != nil {
		return models.LocalSettings{}, "", "", err
	}
	if settings.Currency != from {
		return models.LocalSettings{}, "", "", fmt.Errorf("%w: ledger is in %s, not %s", ErrCurrencyMismatch, settings.Currency, from)
	}

	return settings, from, to, nil
}

func (c *currencyService) loadSetUp(ctx context.Context) (models.LocalSettings, error) {
	settings, err := c.settings.Load(ctx)
	if err != nil {
		return models.LocalSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if !settings.SetupCompleted {
		return models.LocalSettings{}, ErrSetupRequired
	}
	return settings, nil
}

func validateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}
	return nil
}

// convertAmount returns amount*rate rounded half away from zero to
// amountPlaces.
func convertAmount(amount float64, rate decimal.Decimal) float64 {
	return decimal.NewFromFloat(amount).Mul(rate).Round(amountPlaces).InexactFloat64()
}

func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
		}
	}
	return code, nil
}

