// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/session"
)

// maxAutoLockTick bounds how late an idle session is noticed.
const maxAutoLockTick = 30 * time.Second

type autoLockJob struct {
	session *session.Session
	logger  *logger.Logger
	now     func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLockJob creates an autoLockJob watching sess. The job is idle until
// Start is called.
func NewAutoLockJob(sess *session.Session, log *logger.Logger) AutoLockJob {
	return &autoLockJob{session: sess, logger: log, now: time.Now}
}

// Start implements AutoLockJob. It stops any previously running job, then
// launches a goroutine that locks the session once it has been unlocked and
// unused for idle. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *autoLockJob) Start(ctx context.Context, idle time.Duration) {
	j.Stop()
	if idle <= 0 {
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(min(idle/2, maxAutoLockTick))
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.lockIfIdle(idle)
			}
		}
	}()
}

// Stop implements AutoLockJob. Safe to call when the job is not running.
func (j *autoLockJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *autoLockJob) lockIfIdle(idle time.Duration) {
	if j.session.State() != session.Unlocked {
		return
	}
	if j.now().Sub(j.session.LastUsed()) < idle {
		return
	}

	j.session.Lock()
	j.logger.Info().Str("func", "autoLockJob.lockIfIdle").Dur("idle", idle).Msg("idle session locked")
}
