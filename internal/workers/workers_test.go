// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/service/servicemock"
)

// orderWorker appends "run:<id>" and "stop:<id>" to a shared log.
type orderWorker struct {
	id  string
	log *[]string
}

func (o *orderWorker) Run(context.Context) { *o.log = append(*o.log, "run:"+o.id) }
func (o *orderWorker) Stop()               { *o.log = append(*o.log, "stop:"+o.id) }

func TestWorkers_RunInOrderStopInReverse(t *testing.T) {
	var log []string
	ws := New(&orderWorker{"a", &log}, &orderWorker{"b", &log}, &orderWorker{"c", &log})

	ws.Run(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"run:a", "run:b", "run:c", "stop:c", "stop:b", "stop:a"}, log)
}

func TestWorkers_EmptyAndNil(t *testing.T) {
	assert.NotPanics(t, func() {
		ws := New()
		ws.Run(context.Background())
		ws.Stop()
	})

	assert.NotPanics(t, func() {
		ws := New(nil, nil)
		ws.Run(context.Background())
		ws.Stop()
	})

	assert.NotPanics(t, func() {
		ws := &Workers{}
		ws.Run(context.Background())
		ws.Stop()
	})
}

func TestAutoLockWorker_StartsJobWithIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := servicemock.NewMockAutoLockJob(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, 5*time.Minute),
		job.EXPECT().Stop(),
	)

	w := NewAutoLockWorker(job, 5*time.Minute)
	w.Run(ctx)
	w.Stop()
}

func TestAutoLockWorker_DisabledNeverStarts(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := servicemock.NewMockAutoLockJob(ctrl)

	job.EXPECT().Stop()

	w := NewAutoLockWorker(job, 0)
	w.Run(context.Background())
	w.Stop()
}
