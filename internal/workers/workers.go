// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// New groups ws. Nil workers are skipped.
func New(ws ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range ws {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Run starts every worker in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type autoLockWorker struct {
	job  service.AutoLockJob
	idle time.Duration
}

// NewAutoLockWorker adapts job to a Worker that locks the session after idle
// of inactivity. A non-positive idle makes Run a no-op.
func NewAutoLockWorker(job service.AutoLockJob, idle time.Duration) Worker {
	return &autoLockWorker{job: job, idle: idle}
}

func (w *autoLockWorker) Run(ctx context.Context) {
	if w.idle <= 0 {
		return
	}
	w.job.Start(ctx, w.idle)
}

func (w *autoLockWorker) Stop() {
	w.job.Stop()
}
