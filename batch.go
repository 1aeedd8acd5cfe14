//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package uid

import (
	"fmt"
	"sync"
)

/*
batchOf allocates count identifiers through the engine worker pool.

The request is partitioned into chunks of ceil(count / workers), the
worker count bounded by both the pool size and count itself so that
small batches do not occupy more workers than items. Every chunk fills
a disjoint sub-slice of one result, workers share no per-item state:
chunk-internal order survives end-to-end and global uniqueness holds
because each worker consumes a disjoint slice of the entropy stream and
counter state.

The allocation is all-or-nothing: the first failing chunk voids the
whole result.
*/
func batchOf[T any](e *Engine, count int, gen func() (T, error)) ([]T, error) {
	switch {
	case count < 0:
		return nil, fmt.Errorf("%w: count %d is negative", ErrInvalidArgument, count)
	case count == 0:
		return nil, nil
	}

	workers := e.workers
	if workers > count {
		workers = count
	}
	chunk := (count + workers - 1) / workers

	seq := make([]T, count)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := lo + chunk
		if hi > count {
			hi = count
		}
		if lo >= hi {
			break
		}

		i, lo, hi := i, lo, hi
		wg.Add(1)
		e.tasks <- func() {
			defer wg.Done()
			for at := lo; at < hi; at++ {
				val, err := gen()
				if err != nil {
					errs[i] = err
					return
				}
				seq[at] = val
			}
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return seq, nil
}

// UUID1Batch generates count time-based v1 identifiers in parallel.
func (e *Engine) UUID1Batch(count int) ([]UUID, error) {
	return batchOf(e, count, e.UUID1)
}

// UUID4Batch generates count random v4 identifiers in parallel.
func (e *Engine) UUID4Batch(count int) ([]UUID, error) {
	return batchOf(e, count, e.UUID4)
}

// UUID7Batch generates count time-ordered v7 identifiers in parallel.
func (e *Engine) UUID7Batch(count int) ([]UUID, error) {
	return batchOf(e, count, e.UUID7)
}

// ShortIDBatch generates count short ids in parallel.
func (e *Engine) ShortIDBatch(count int) ([]string, error) {
	return batchOf(e, count, e.ShortID)
}

// NanoIDBatch generates count nano ids in parallel.
func (e *Engine) NanoIDBatch(count int) ([]string, error) {
	return batchOf(e, count, e.NanoID)
}

/*

Package level batch generators over the process-wide default engine.

*/

// UUID1Batch generates count time-based v1 identifiers in parallel.
func UUID1Batch(count int) ([]UUID, error) {
	e, err := defaultEngine()
	if err != nil {
		return nil, err
	}
	return e.UUID1Batch(count)
}

// UUID4Batch generates count random v4 identifiers in parallel.
func UUID4Batch(count int) ([]UUID, error) {
	e, err := defaultEngine()
	if err != nil {
		return nil, err
	}
	return e.UUID4Batch(count)
}

// UUID7Batch generates count time-ordered v7 identifiers in parallel.
func UUID7Batch(count int) ([]UUID, error) {
	e, err := defaultEngine()
	if err != nil {
		return nil, err
	}
	return e.UUID7Batch(count)
}

// ShortIDBatch generates count short ids in parallel.
func ShortIDBatch(count int) ([]string, error) {
	e, err := defaultEngine()
	if err != nil {
		return nil, err
	}
	return e.ShortIDBatch(count)
}

// NanoIDBatch generates count nano ids in parallel.
func NanoIDBatch(count int) ([]string, error) {
	e, err := defaultEngine()
	if err != nil {
		return nil, err
	}
	return e.NanoIDBatch(count)
}
