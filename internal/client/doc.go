// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the ledger command-line application.
//
// Every invocation builds a fresh cobra command tree over one [App]. The
// first command that needs storage opens it through the configured
// [BootstrapFunc]; commands that read or write sensitive fields unlock the
// session on demand, from --key-file or a password prompt.
//
// The shell command keeps one process and one session alive across many
// commands, so unlock, lock and the auto-lock worker are meaningful there.
package client
