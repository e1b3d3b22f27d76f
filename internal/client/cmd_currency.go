// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/internal/service"
)

func (a *App) newCurrencyCommand() *cobra.Command {
	currency := &cobra.Command{
		Use:   "currency",
		Short: "Change the ledger currency",
		Long: `Every amount in the ledger is in one currency.

With no records, 'currency set' switches right away. Otherwise choose:
  keep      relabel the ledger, leaving every amount unchanged
  convert   multiply every amount by a rate, rounded to 2 decimals

A conversion that stopped part way blocks both until it is finished with the
same rate or dropped with 'currency abandon'.`,
	}

	set := &cobra.Command{
		Use:   "set <code>",
		Short: "Switch currency when the ledger has no records",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.services.CurrencyService.ChangeCurrency(cmd.Context(), args[0])
			if errors.Is(err, service.ErrUserChoiceRequired) {
				a.hint("Keep amounts:    %s", codeColor.Sprintf("ledger currency keep <from> %s", args[0]))
				a.hint("Convert amounts: %s", codeColor.Sprintf("ledger currency convert <from> %s --rate <rate>", args[0]))
			}
			if err != nil {
				return err
			}
			a.success("Currency set to %s", args[0])
			return nil
		},
	}

	keep := &cobra.Command{
		Use:   "keep <from> <to>",
		Short: "Relabel the ledger without changing any amount",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.CurrencyService.KeepAsIs(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			a.success("Currency changed from %s to %s, amounts unchanged", args[0], args[1])
			return nil
		},
	}

	var (
		rate   string
		parsed float64
	)
	convert := &cobra.Command{
		Use:   "convert <from> <to> --rate <rate>",
		Short: "Multiply every amount by a rate and relabel the ledger",
		Long: `Converts every stored amount: new = round(old * rate, 2).

Records are rewritten in chunks and progress is saved after each chunk. If
the run stops part way, the ledger keeps its old currency and the data is
mixed; run the same command again to convert the rest.`,
		Example: `  ledger currency convert USD EUR --rate 0.92`,
		// runs before the root pre-run hook unlocks
		Args: func(cmd *cobra.Command, args []string) error {
			if err := exactArgs(2)(cmd, args); err != nil {
				return err
			}
			if rate == "" {
				return usageErrorf("--rate is required")
			}
			// NaN and Inf parse; Convert rejects them
			r, err := strconv.ParseFloat(rate, 64)
			if err != nil {
				return usageErrorf("rate %q is not a number", rate)
			}
			parsed = r
			return nil
		},
		Annotations: needsKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := a.startSpinner("Converting amounts...")
			report, err := a.services.CurrencyService.Convert(cmd.Context(), args[0], args[1], parsed)
			stop()
			if err != nil {
				return err
			}

			a.success("Converted %d records from %s to %s at rate %v", report.Total, report.From, report.To, report.Rate)
			if report.Skipped > 0 {
				a.hint("%d of them were already converted by an earlier run", report.Skipped)
			}
			return nil
		},
	}
	convert.Flags().StringVar(&rate, "rate", "", "Multiplier from the old currency to the new one")

	abandon := &cobra.Command{
		Use:   "abandon",
		Short: "Drop an unfinished conversion, leaving converted records as they are",
		Long: `Forgets which records an unfinished 'currency convert' already rewrote.
Those records keep their converted amounts and the ledger keeps its old
currency, so amounts stay mixed until you fix them by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dropped, err := a.services.CurrencyService.AbandonRebase(cmd.Context())
			if err != nil {
				return err
			}
			if dropped == nil {
				a.hint("No unfinished conversion")
				return nil
			}

			a.warn("%d records keep amounts converted from %s to %s at rate %v",
				len(dropped.Done), dropped.From, dropped.To, dropped.Rate)
			a.success("Conversion abandoned, ledger stays in %s", dropped.From)
			return nil
		},
	}

	currency.AddCommand(set, keep, convert, abandon)
	return currency
}
