// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
)

// Command annotations read by the root pre-run hook.
const (
	// annotationOffline marks commands that need neither config nor stores.
	annotationOffline = "offline"
	// annotationNeedsKey marks commands that unlock a locked session first.
	annotationNeedsKey = "needs-key"
)

const flagKeyFile = "key-file"

var (
	offline  = map[string]string{annotationOffline: "true"}
	needsKey = map[string]string{annotationNeedsKey: "true"}
)

func (a *App) newRootCommand() *cobra.Command {
	var keyFile string

	root := &cobra.Command{
		Use:   "ledger",
		Short: "Personal finance ledger with client-side encryption",
		Long: `ledger keeps transactions and savings goals in a SQL database or a
hosted REST backend. Amounts, descriptions and notes can be encrypted on this
machine before they are stored, with a key derived from a password or a
random key saved in a file.

Run 'ledger init' first, then 'ledger help <command>' for details.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.started = true
			if cmd.Annotations[annotationOffline] != "" || cmd.Name() == "help" {
				return nil
			}
			if err := a.open(cmd); err != nil {
				return err
			}
			if cmd.Annotations[annotationNeedsKey] != "" {
				return a.ensureUnlocked(cmd.Context(), keyFile)
			}
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().StringVarP(&keyFile, flagKeyFile, "k", "", "File holding an exported key, for random-key ledgers")

	root.AddCommand(
		a.newInitCommand(),
		a.newUnlockCommand(&keyFile),
		a.newLockCommand(),
		a.newStatusCommand(),
		a.newEncryptCommand(),
		a.newKeyCommand(),
		a.newTransactionCommand(),
		a.newGoalCommand(),
		a.newCurrencyCommand(),
		a.newShellCommand(),
		a.newVersionCommand(),
	)
	return root
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: offline,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(a.out, a.buildInfo.String())
		},
	}
}

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, args...)...)
}
