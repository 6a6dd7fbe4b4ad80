// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

// Workers runs a set of background workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Nil entries are skipped.
func NewWorkers(workers ...Worker) *Workers {
	aggregate := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, worker := range workers {
		if worker != nil {
			aggregate.workers = append(aggregate.workers, worker)
		}
	}
	return aggregate
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned. Cancelling ctx is the shutdown signal.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}

	wg.Wait()
}
