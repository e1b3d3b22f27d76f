// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/session"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

func (a *App) newInitCommand() *cobra.Command {
	var (
		currency    string
		mode        string
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"setup"},
		Short:   "Set the currency and encryption mode of a new ledger",
		Long: `Performs first-run setup.

Encryption modes:
  none      amounts and notes are stored in clear
  password  the key is derived from a password; nothing to keep but the password
  random    a random key is generated and printed once; keep it in a file

Examples:
  ledger init --currency EUR
  ledger init --currency USD --mode password
  ledger init --mode random --clipboard`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if currency == "" {
				currency = a.cfg.App.DefaultCurrency
			}

			req := service.SetupRequest{Currency: currency, Mode: models.EncryptionMode(mode)}
			if req.Mode == models.EncryptionModePassword {
				password, err := a.newPassword()
				if err != nil {
					return err
				}
				req.Password = password
			}

			key, err := a.services.VaultService.Setup(cmd.Context(), req)
			if err != nil {
				return err
			}

			a.success("Ledger set up in %s with encryption mode %s", currency, mode)
			if key != "" {
				a.showKey(key, toClipboard)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "Three-letter currency code (default from --default-currency)")
	cmd.Flags().StringVar(&mode, "mode", string(models.EncryptionModeNone), "Encryption mode: none, password or random")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy a generated key to the clipboard instead of printing it")
	return cmd
}

func (a *App) newUnlockCommand(keyFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Load the encryption key into the session",
		Long: `Unlocks the ledger with a password, or with a key file for random-key
ledgers. The key is checked against a stored record when one exists.

Inside 'ledger shell' the key stays loaded until 'lock' or the auto-lock
timeout. Outside the shell this only checks the password or key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch a.services.Session.State() {
			case session.NoEncryption:
				a.hint("This ledger is not encrypted")
				return nil
			case session.Unlocked:
				a.hint("Already unlocked")
				return nil
			}

			if err := a.unlock(cmd.Context(), *keyFile); err != nil {
				return err
			}
			a.success("Unlocked")
			return nil
		},
	}
}

func (a *App) newLockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Drop the encryption key from memory",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.services.VaultService.Lock()
			a.success("Locked")
		},
	}
}

func (a *App) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show currency, encryption mode and session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.services.VaultService.Status(cmd.Context())
			if err != nil {
				return err
			}

			if !status.SetupCompleted {
				a.hint("Ledger is not set up. Run %s", codeColor.Sprint("ledger init"))
				return nil
			}

			fmt.Fprintf(a.out, "Currency:   %s\n", status.Currency)
			fmt.Fprintf(a.out, "Encryption: %s\n", status.Mode)
			fmt.Fprintf(a.out, "Session:    %s\n", status.State)

			if p := status.PendingRebase; p != nil {
				a.warn("conversion %s -> %s at rate %v stopped after %d records. Run %s to finish or %s to drop it",
					p.From, p.To, p.Rate, len(p.Done),
					codeColor.Sprintf("ledger currency convert %s %s --rate %v", p.From, p.To, p.Rate),
					codeColor.Sprint("ledger currency abandon"))
			}
			return nil
		},
	}
}

func (a *App) newEncryptCommand() *cobra.Command {
	var (
		mode        string
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Enable encryption and encrypt every stored record",
		Long: `Switches a clear ledger to password or random mode. Settings are saved
first, then every record is rewritten encrypted.

If the rewrite stops part way, run the command again: an encrypted ledger
finishes the records still in clear.`,
		Args:        cobra.NoArgs,
		Annotations: needsKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if a.services.Session.State() == session.NoEncryption && models.EncryptionMode(mode) == models.EncryptionModePassword {
				p, err := a.newPassword()
				if err != nil {
					return err
				}
				password = p
			}

			stop := a.startSpinner("Encrypting records...")
			key, report, err := a.services.VaultService.EnableEncryption(cmd.Context(), models.EncryptionMode(mode), password)
			stop()

			if key != "" {
				a.showKey(key, toClipboard)
			}
			if err != nil {
				return err
			}

			a.success("Encrypted %d of %d records", report.Succeeded+report.Skipped, report.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(models.EncryptionModePassword), "Encryption mode: password or random")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy a generated key to the clipboard instead of printing it")
	return cmd
}

func (a *App) newKeyCommand() *cobra.Command {
	key := &cobra.Command{
		Use:   "key",
		Short: "Manage the encryption key",
	}

	var (
		toClipboard bool
		output      string
	)
	export := &cobra.Command{
		Use:   "export",
		Short: "Print the random key of an unlocked ledger",
		Long: `Prints the text form of a random key so it can be saved to a key file.
Password-derived keys cannot be exported.

Examples:
  ledger key export --key-file old.key --output ledger.key
  ledger key export --clipboard`,
		Args:        cobra.NoArgs,
		Annotations: needsKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.services.VaultService.ExportKey(cmd.Context())
			if err != nil {
				return err
			}

			if output != "" {
				if err = os.WriteFile(output, []byte(text+"\n"), 0o600); err != nil {
					return usageErrorf("write key file: %v", err)
				}
				a.success("Key written to %s", output)
				return nil
			}

			a.showKey(text, toClipboard)
			return nil
		},
	}
	export.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy the key to the clipboard instead of printing it")
	export.Flags().StringVarP(&output, "output", "o", "", "Write the key to this file (mode 0600)")

	key.AddCommand(export)
	return key
}
