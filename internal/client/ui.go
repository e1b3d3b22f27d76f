// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	codeColor    = color.New(color.FgHiWhite, color.Bold)
)

func successMark() string { return successColor.Sprint("✓") }
func failureMark() string { return failureColor.Sprint("✗") }
func infoMark() string    { return infoColor.Sprint("→") }

func (a *App) success(format string, args ...any) {
	fmt.Fprintln(a.out, successMark()+" "+fmt.Sprintf(format, args...))
}

func (a *App) hint(format string, args ...any) {
	fmt.Fprintln(a.out, infoMark()+" "+fmt.Sprintf(format, args...))
}

func (a *App) warn(format string, args ...any) {
	fmt.Fprintln(a.errOut, warningColor.Sprint("Warning:")+" "+fmt.Sprintf(format, args...))
}

// showKey prints an exported key, or copies it when toClipboard is set and
// the clipboard works.
func (a *App) showKey(key string, toClipboard bool) {
	a.warn("this key is the only way to unlock the ledger. It is not stored anywhere; keep it safe.")
	if toClipboard {
		err := a.copyToClipboard(key)
		if err == nil {
			a.success("Key copied to the clipboard")
			return
		}
		a.warn("clipboard unavailable (%v), printing the key instead", err)
	}
	fmt.Fprintln(a.out, codeColor.Sprint(key))
}

// startSpinner shows message with a spinner on a terminal. The returned
// function stops it.
func (a *App) startSpinner(message string) func() {
	if !a.tty {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(a.errOut))
	s.Suffix = " " + message
	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")
	s.Start()
	return s.Stop
}
