// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/go-ledger-keeper/internal/app"
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/session"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// App is the ledger CLI. It is not safe for concurrent use.
type App struct {
	bootstrap BootstrapFunc
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	cfg      *config.ClientConfig
	services *service.ClientServices
	closer   io.Closer

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	// stdinFd is the descriptor used for hidden password input; -1 reads
	// passwords as plain lines from in.
	stdinFd int
	// tty enables the spinner.
	tty bool

	copyToClipboard func(string) error

	// started is set once a command passed argument parsing; errors
	// returned before that are usage errors.
	started bool
}

// NewApp creates the CLI over the process standard streams.
func NewApp(bootstrap BootstrapFunc, buildInfo models.AppBuildInfo, log *logger.Logger) *App {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fd = -1
	}

	return &App{
		bootstrap:       bootstrap,
		buildInfo:       buildInfo,
		logger:          log,
		in:              bufio.NewReader(os.Stdin),
		out:             os.Stdout,
		errOut:          os.Stderr,
		stdinFd:         fd,
		tty:             term.IsTerminal(int(os.Stderr.Fd())),
		copyToClipboard: clipboard.WriteAll,
	}
}

// Run executes args, prints a user message for a failure and releases the
// stores. The returned error is the original one.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.close()

	ctx = a.logger.WithContext(ctx)
	err := a.execute(ctx, args)
	if err != nil {
		a.printError(err)
	}
	return err
}

func (a *App) execute(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	a.started = false
	err := root.ExecuteContext(ctx)
	if err != nil && !a.started && !errors.Is(err, ErrUsage) && !errors.Is(err, ErrBootstrap) {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return err
}

// open loads the configuration from the parsed flags of cmd and builds the
// services. It is a no-op once the services exist.
func (a *App) open(cmd *cobra.Command) error {
	if a.services != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrap, err)
	}

	services, closer, err := a.bootstrap(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrap, err)
	}

	a.cfg, a.services, a.closer = cfg, services, closer
	return nil
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("failed to close stores")
	}
	a.closer = nil
}

// ensureUnlocked unlocks a locked session; other states need nothing.
func (a *App) ensureUnlocked(ctx context.Context, keyFile string) error {
	if a.services.Session.State() != session.Locked {
		return nil
	}
	return a.unlock(ctx, keyFile)
}

func (a *App) unlock(ctx context.Context, keyFile string) error {
	if keyFile != "" {
		text, err := os.ReadFile(keyFile)
		if err != nil {
			return fmt.Errorf("%w: read key file: %w", ErrUsage, err)
		}
		return a.services.VaultService.UnlockWithKey(ctx, strings.TrimSpace(string(text)))
	}

	status, err := a.services.VaultService.Status(ctx)
	if err != nil {
		return err
	}
	if status.Mode == models.EncryptionModeRandom {
		return ErrKeyFileRequired
	}

	password, err := a.readPassword("Password: ")
	if err != nil {
		return err
	}
	return a.services.VaultService.UnlockWithPassword(ctx, password)
}

// newPassword asks for a password twice.
func (a *App) newPassword() (string, error) {
	password, err := a.readPassword("New password: ")
	if err != nil {
		return "", err
	}
	repeated, err := a.readPassword("Repeat password: ")
	if err != nil {
		return "", err
	}
	if password != repeated {
		return "", ErrPasswordMismatch
	}
	return password, nil
}

func (a *App) readPassword(prompt string) (string, error) {
	fmt.Fprint(a.errOut, prompt)

	if a.stdinFd >= 0 {
		b, err := term.ReadPassword(a.stdinFd)
		fmt.Fprintln(a.errOut)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := a.readLine()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return line, nil
}

// readLine returns the next input line without its line ending. A final
// line without a newline is returned with a nil error.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *App) printError(err error) {
	a.logger.Err(err).Str("func", "App.printError").Msg("command failed")
	fmt.Fprintln(a.errOut, failureMark()+" "+userMessage(err))
}

// userMessage extends [app.UserMessage] with the errors of the command line
// layer.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrUsage), errors.Is(err, ErrBootstrap):
		return err.Error()
	case errors.Is(err, ErrKeyFileRequired):
		return "this ledger uses a random key: pass --key-file"
	case errors.Is(err, ErrPasswordMismatch):
		return "passwords do not match"
	case errors.Is(err, ErrUnterminatedQuote):
		return "unterminated quote"
	}
	return app.UserMessage(err)
}
