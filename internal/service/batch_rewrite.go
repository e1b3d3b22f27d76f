// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// rewriteItem is one stored row scheduled for rewriting.
type rewriteItem struct {
	table recordTable
	row   models.StorageRow
}

func (i rewriteItem) recordKey() string {
	return models.RecordKey(i.table.table().Name, i.row.ID)
}

// batchResult aggregates a batch rewrite.
type batchResult struct {
	done         []string
	failed       int
	notAttempted int
	cause        error
}

// batchRewriter rewrites rows chunk by chunk. Inside a chunk up to
// concurrency rows are in flight; once any row fails no further row is
// started, in flight rows finish, and no later chunk runs.
type batchRewriter struct {
	store       store.Store
	chunkSize   int
	concurrency int
}

// build returns the partial row to write for an item.
type buildFunc func(item rewriteItem) (models.StorageRow, error)

// chunkDoneFunc is called after every chunk with the record keys rewritten
// in it. An error stops the batch.
type chunkDoneFunc func(done []string) error

func (b batchRewriter) run(ctx context.Context, items []rewriteItem, build buildFunc, onChunk chunkDoneFunc) (batchResult, error) {
	chunkSize := max(b.chunkSize, 1)

	var res batchResult
	for start := 0; start < len(items); start += chunkSize {
		end := min(start+chunkSize, len(items))

		chunk := b.runChunk(ctx, items[start:end], build)
		res.done = append(res.done, chunk.done...)
		res.failed += chunk.failed
		res.notAttempted += chunk.notAttempted
		if res.cause == nil {
			res.cause = chunk.cause
		}

		if onChunk != nil && len(chunk.done) > 0 {
			if err := onChunk(chunk.done); err != nil {
				res.notAttempted += len(items) - end
				return res, err
			}
		}

		if chunk.failed > 0 {
			res.notAttempted += len(items) - end
			break
		}
	}

	return res, nil
}

func (b batchRewriter) runChunk(ctx context.Context, chunk []rewriteItem, build buildFunc) batchResult {
	var (
		mu      sync.Mutex
		res     batchResult
		stopped atomic.Bool
	)

	g := new(errgroup.Group)
	g.SetLimit(max(b.concurrency, 1))

	for _, item := range chunk {
		g.Go(func() error {
			if stopped.Load() {
				mu.Lock()
				res.notAttempted++
				mu.Unlock()
				return nil
			}

			partial, err := build(item)
			if err == nil {
				_, err = b.store.Update(ctx, item.table.table().Name, item.row.ID, partial)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stopped.Store(true)
				res.failed++
				if res.cause == nil {
					res.cause = fmt.Errorf("rewrite %s: %w", item.recordKey(), err)
				}
				return nil
			}
			res.done = append(res.done, item.recordKey())
			return nil
		})
	}

	// failures are collected in res, the group never returns one
	_ = g.Wait()

	return res
}
