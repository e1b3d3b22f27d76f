// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of a long-lived ledger process
// such as the interactive shell.
//
// A [Worker] is started with a context and stopped explicitly; [Workers]
// groups several of them so the caller starts and stops them as one.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Run must not block: implementations spawn their own goroutines and return.
// Stop waits until those goroutines have exited.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go loop(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
