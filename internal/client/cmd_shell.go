// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/session"
	"github.com/MKhiriev/go-ledger-keeper/internal/workers"
)

func (a *App) newShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run ledger commands in one session",
		Long: `Reads commands line by line, without the 'ledger' prefix, until 'exit'
or end of input. The session stays unlocked between commands and locks
itself after --auto-lock-after of inactivity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logger.FromContext(ctx)

			ws := workers.New(workers.NewAutoLockWorker(a.services.AutoLockJob, a.cfg.Workers.AutoLockAfter))
			ws.Run(ctx)
			defer ws.Stop()

			log.Info().Str("func", "App.shell").Dur("auto_lock_after", a.cfg.Workers.AutoLockAfter).Msg("shell started")
			a.hint("Type %s for commands, %s to leave", codeColor.Sprint("help"), codeColor.Sprint("exit"))

			for {
				fmt.Fprint(a.out, a.prompt())

				line, err := a.readLine()
				if errors.Is(err, io.EOF) {
					fmt.Fprintln(a.out)
					return nil
				}
				if err != nil {
					return fmt.Errorf("read command: %w", err)
				}

				words, err := splitArgs(line)
				if err != nil {
					a.printError(err)
					continue
				}
				if len(words) == 0 {
					continue
				}

				switch words[0] {
				case "exit", "quit":
					return nil
				case "shell":
					a.hint("Already in the shell")
					continue
				}

				if err = a.execute(ctx, words); err != nil {
					a.printError(err)
				}
			}
		},
	}
}

func (a *App) prompt() string {
	if a.services.Session.State() == session.Locked {
		return "ledger (locked)> "
	}
	return "ledger> "
}

// splitArgs splits a shell line into words. Single and double quotes group
// words; a backslash escapes the next character outside single quotes.
func splitArgs(line string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped, inWord = true, true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote, inWord = r, true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 || escaped {
		return nil, ErrUnterminatedQuote
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}
